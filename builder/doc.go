// Package builder provides reusable “functional‐options”‐style building blocks
// for assembling fixture graphs. It lives alongside core to centralize common
// configuration, ID schemes, and weight distributions, keeping test and
// benchmark fixtures DRY and deterministic.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, weight function.
//   - Topology factories (Constructor implementations):
//     – Cycle, Path, Complete.
//   - Vertex‐ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, DefaultEdgeWeight.
//     – MethodCycle, MethodPath, MethodComplete tokens for error context.
//
// Guarantees:
//
//   - Idempotent configuration: re-running the same builder on g will not duplicate
//     vertices or edges.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Documented algorithmic complexity (O(n), O(n²), etc.) per constructor.
//   - Unit tests in builder/*_test.go cover the ID schemes, weight functions and
//     configuration options; SymbolNumberIDFn and the WithSymbNumb, WithHexIDs,
//     WithNormalWeight and WithExponentialWeight wrappers have no tests of their own.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
