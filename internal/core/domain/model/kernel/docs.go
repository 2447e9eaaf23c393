// Package kernel holds the shared value objects of the ordering domain.
//
// The package includes:
//   - UUID: identifier of orders, customers, restaurants and dishes
//   - Money: an amount in integer minor currency units
//
// Both are immutable and safe for concurrent use.
package kernel
