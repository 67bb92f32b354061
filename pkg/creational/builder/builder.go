package builder

// Builder assembles a House step by step. Steps return the builder so
// they chain fluently; Product hands off the finished house and resets
// the builder for the next build.
type Builder interface {
	BuildFoundation() Builder
	BuildWalls() Builder
	BuildRoof() Builder
	BuildWindows() Builder

	// Reset discards the house under construction.
	Reset()

	// Product returns the finished house and resets the builder.
	Product() *House
}

// StoneHouseBuilder builds houses from stone.
type StoneHouseBuilder struct {
	house *House
}

// NewStoneHouseBuilder creates a stone house builder ready to build.
func NewStoneHouseBuilder() *StoneHouseBuilder {
	b := &StoneHouseBuilder{}
	b.Reset()
	return b
}

// Reset implements Builder.
func (b *StoneHouseBuilder) Reset() { b.house = &House{} }

// BuildFoundation implements Builder.
func (b *StoneHouseBuilder) BuildFoundation() Builder {
	b.house.add("a reinforced concrete foundation")
	return b
}

// BuildWalls implements Builder.
func (b *StoneHouseBuilder) BuildWalls() Builder {
	b.house.add("granite walls")
	return b
}

// BuildRoof implements Builder.
func (b *StoneHouseBuilder) BuildRoof() Builder {
	b.house.add("a slate roof")
	return b
}

// BuildWindows implements Builder.
func (b *StoneHouseBuilder) BuildWindows() Builder {
	b.house.add("leaded windows")
	return b
}

// Product implements Builder.
func (b *StoneHouseBuilder) Product() *House {
	house := b.house
	b.Reset()
	return house
}

// WoodHouseBuilder builds houses from timber.
type WoodHouseBuilder struct {
	house *House
}

// NewWoodHouseBuilder creates a wood house builder ready to build.
func NewWoodHouseBuilder() *WoodHouseBuilder {
	b := &WoodHouseBuilder{}
	b.Reset()
	return b
}

// Reset implements Builder.
func (b *WoodHouseBuilder) Reset() { b.house = &House{} }

// BuildFoundation implements Builder.
func (b *WoodHouseBuilder) BuildFoundation() Builder {
	b.house.add("timber pile foundations")
	return b
}

// BuildWalls implements Builder.
func (b *WoodHouseBuilder) BuildWalls() Builder {
	b.house.add("log walls")
	return b
}

// BuildRoof implements Builder.
func (b *WoodHouseBuilder) BuildRoof() Builder {
	b.house.add("a cedar shingle roof")
	return b
}

// BuildWindows implements Builder.
func (b *WoodHouseBuilder) BuildWindows() Builder {
	b.house.add("double-hung windows")
	return b
}

// Product implements Builder.
func (b *WoodHouseBuilder) Product() *House {
	house := b.house
	b.Reset()
	return house
}
