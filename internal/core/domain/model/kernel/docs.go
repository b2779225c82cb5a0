// Package kernel provides the core domain primitives shared by every
// aggregate in the food-delivery domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a non-negative monetary amount in minor currency units
//
// These primitives enforce domain invariants at construction time. They are
// immutable and safe for concurrent use.
package kernel
