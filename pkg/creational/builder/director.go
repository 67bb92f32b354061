package builder

import "errors"

// ErrNoBuilder is returned when the director is asked to construct
// before a builder has been set.
var ErrNoBuilder = errors.New("builder: no builder set")

// Director knows the order in which to run build steps. It works with
// any Builder; swapping the builder swaps the materials, not the plan.
type Director struct {
	builder Builder
}

// NewDirector creates a director with no builder set.
func NewDirector() *Director {
	return &Director{}
}

// SetBuilder sets the builder used by subsequent constructions.
func (d *Director) SetBuilder(b Builder) {
	d.builder = b
}

// Construct runs the full build: foundation, walls, roof, windows.
func (d *Director) Construct() error {
	if d.builder == nil {
		return ErrNoBuilder
	}
	d.builder.
		BuildFoundation().
		BuildWalls().
		BuildRoof().
		BuildWindows()
	return nil
}

// ConstructMinimal builds a weathertight shell without windows.
func (d *Director) ConstructMinimal() error {
	if d.builder == nil {
		return ErrNoBuilder
	}
	d.builder.
		BuildFoundation().
		BuildWalls().
		BuildRoof()
	return nil
}
