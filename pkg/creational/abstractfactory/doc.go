// Package abstractfactory demonstrates the abstract factory pattern with
// furniture families: each FurnitureFactory creates a chair, a sofa, and
// a table that all share one style, so products that collaborate (a sofa
// placed beside a chair) are guaranteed to match.
//
//	f, err := abstractfactory.ForStyle(abstractfactory.StyleVictorian)
//	if err != nil {
//	    // unknown style
//	}
//	for _, line := range abstractfactory.FurnishRoom(f) {
//	    fmt.Println(line)
//	}
package abstractfactory
