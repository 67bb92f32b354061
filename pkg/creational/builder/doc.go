// Package builder demonstrates the builder pattern: a Director runs
// identical build plans against interchangeable concrete builders, and
// the steps chain fluently.
//
//	b := builder.NewStoneHouseBuilder()
//	d := builder.NewDirector()
//	d.SetBuilder(b)
//	if err := d.Construct(); err != nil {
//	    // no builder set
//	}
//	house := b.Product() // builder resets for the next build
//	fmt.Println(house.Summary())
//
// Builders can also be driven directly, without a director:
//
//	house := builder.NewWoodHouseBuilder().
//	    BuildFoundation().
//	    BuildWalls().
//	    Product()
package builder
