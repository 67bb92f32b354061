// Package factory demonstrates the factory method pattern with a
// logistics domain: Logistics creators produce Transport products
// without clients naming concrete types.
//
// Two entry styles are provided. The classic creator hierarchy:
//
//	fmt.Println(factory.PlanDelivery(factory.RoadLogistics{}))
//
// And a registry-backed kind table, which is how Go code usually spells
// this pattern in practice:
//
//	t, err := factory.New("ship")
//
// FromConfig builds a transport from a declarative config spec, so a
// YAML/JSON/TOML file can choose the concrete type at runtime.
package factory
