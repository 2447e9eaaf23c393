// Package menu models the catalog truth an order is priced against: dishes,
// their specification groups and the options of each group.
//
// The catalog is owned by an external service; these types are read-only
// snapshots of what that service returned at validation time.
package menu
