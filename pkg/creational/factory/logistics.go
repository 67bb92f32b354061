package factory

// Logistics is the creator. Its factory method returns a Transport; the
// concrete creator decides which one.
type Logistics interface {
	// CreateTransport is the factory method.
	CreateTransport() Transport
}

// PlanDelivery exercises the factory method without knowing which
// concrete creator it was handed.
func PlanDelivery(l Logistics) string {
	transport := l.CreateTransport()
	return "the order is " + transport.Deliver()
}

// RoadLogistics creates trucks.
type RoadLogistics struct{}

// CreateTransport implements Logistics.
func (RoadLogistics) CreateTransport() Transport { return NewTruck() }

// SeaLogistics creates ships.
type SeaLogistics struct{}

// CreateTransport implements Logistics.
func (SeaLogistics) CreateTransport() Transport { return NewShip() }

// AirLogistics creates drones.
type AirLogistics struct{}

// CreateTransport implements Logistics.
func (AirLogistics) CreateTransport() Transport { return NewDrone() }
