package factory

import "github.com/google/uuid"

// Transport is the product interface. Concrete transports differ only in
// how they deliver; clients plan deliveries without naming a concrete type.
type Transport interface {
	// Kind returns the registered kind name ("truck", "ship", "drone").
	Kind() string

	// ShipmentID returns the id assigned when the transport was created.
	ShipmentID() string

	// Deliver describes carrying out the delivery.
	Deliver() string
}

// Truck delivers by road.
type Truck struct {
	shipmentID string
}

// NewTruck creates a truck with a fresh shipment id.
func NewTruck() Transport {
	return &Truck{shipmentID: uuid.NewString()}
}

func (t *Truck) Kind() string       { return "truck" }
func (t *Truck) ShipmentID() string { return t.shipmentID }

// Deliver implements Transport.
func (t *Truck) Deliver() string {
	return "delivering shipment " + t.shipmentID + " by road in a truck"
}

// Ship delivers by sea.
type Ship struct {
	shipmentID string
}

// NewShip creates a ship with a fresh shipment id.
func NewShip() Transport {
	return &Ship{shipmentID: uuid.NewString()}
}

func (s *Ship) Kind() string       { return "ship" }
func (s *Ship) ShipmentID() string { return s.shipmentID }

// Deliver implements Transport.
func (s *Ship) Deliver() string {
	return "delivering shipment " + s.shipmentID + " by sea in a container ship"
}

// Drone delivers by air.
type Drone struct {
	shipmentID string
}

// NewDrone creates a drone with a fresh shipment id.
func NewDrone() Transport {
	return &Drone{shipmentID: uuid.NewString()}
}

func (d *Drone) Kind() string       { return "drone" }
func (d *Drone) ShipmentID() string { return d.shipmentID }

// Deliver implements Transport.
func (d *Drone) Deliver() string {
	return "delivering shipment " + d.shipmentID + " by air with a drone"
}
