// Package measure implements dimensioned numeric values: magnitudes tagged
// with a unit, convertible between units of the same dimension, and
// combinable through a registry of named binary operations.
//
// The package is organized around three cooperating pieces:
//   - Registry: an append-only table of unit types (dimensions such as
//     distance or time) and the named units inside them, each with a scale
//     relative to the dimension's implicit base unit.
//   - Ops: an append-only table of named binary operations over magnitudes,
//     with synchronous registration notifications so hosts can react as the
//     operation set grows.
//   - Measure: an immutable magnitude paired with a unit and a
//     significant-digit precision, supporting conversion within its
//     dimension and registry-dispatched arithmetic against compatible
//     measures.
//
// DefaultRegistry and DefaultOps are pre-seeded process-wide instances;
// hosts that prefer explicit wiring can build their own with NewRegistry
// and NewOps.
package measure
