// Package services provides domain services that work across the menu and order
// models.
//
// The package includes:
//   - OrderComposer: validates a cart against the catalog, prices it on the server
//     and builds the order snapshot
//
// Services here are pure. Catalog reads and persistence belong to the command
// handlers that call them.
package services
