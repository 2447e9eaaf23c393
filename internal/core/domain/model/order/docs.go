// Package order provides the Order aggregate of the ordering core and the state
// machine governing it after creation.
//
// The package includes:
//   - Order: the aggregate root holding the immutable priced snapshot
//   - LineItem: one denormalized dish line of the snapshot
//   - State: the lifecycle states and the transition table
//   - History: the append-only log of StateRecords; the current state is its last record
//   - Actor: the party (customer or restaurant) requesting a transition
//
// Key business rules:
//   - The total price equals the sum of line price times count at creation and is
//     never recomputed afterwards
//   - State flows Created -> Paid -> Accepted -> Completed, Cancelled only from Paid
//   - Paying is reserved to the owning customer, every later step to the owning restaurant
//   - State records are appended, never rewritten
package order
