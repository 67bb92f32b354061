/*
Package creational is a collection of creational design patterns in Go.

Each pattern lives in its own subpackage:

  - singleton: a thread-safe lazy single-instance registry. One instance
    per Go type, constructed at most once, with first-write-wins argument
    binding and retry after constructor failure.
  - factory: the factory method, as a Logistics/Transport demo and as a
    registry-backed kind table with config-driven construction.
  - abstractfactory: furniture families whose products are guaranteed to
    share a style.
  - builder: a Director running build plans against interchangeable
    fluent builders.
  - prototype: self-cloning objects, a catalog of named masters, and
    snapshot persistence to memory or SQLite.

Supporting packages: registry (the generic thread-safe map the pattern
packages share), config (typed accessors over YAML/JSON/TOML), and
observability (slog, OpenTelemetry metrics and tracing for instance
construction).

The singleton package is the load-bearing piece; the rest are worked
examples of how Go expresses the classic creational patterns.
*/
package creational
