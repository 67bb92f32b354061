/*
Package config provides type-safe configuration extraction from map[string]any.

Config wraps a map and provides typed accessors that return default values on
missing keys or type mismatches, avoiding verbose assertions at call sites.
The factory package uses it to build products from declarative specs, and the
CLI uses it to load demo configuration files.

# Basic Usage

	cfg := config.New(map[string]any{
	    "kind":    "truck",
	    "retries": 3,
	    "tracing": true,
	})

	kind := cfg.String("kind", "ship")    // "truck"
	retries := cfg.Int("retries", 5)      // 3
	tracing := cfg.Bool("tracing", false) // true

# Loading Files

FromFile detects the format from the extension:

	cfg, err := config.FromFile("demo.yaml")  // YAML
	cfg, err := config.FromFile("demo.json")  // JSON
	cfg, err := config.FromFile("demo.toml")  // TOML

# Nested Sections

Sub returns a nested Config and chains safely through missing keys:

	timeout := cfg.Sub("transport").Duration("timeout", 10*time.Second)
*/
package config
