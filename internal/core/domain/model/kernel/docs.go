// Package kernel provides the value objects shared by every aggregate of the
// order service.
//
// The package includes:
//   - ID: a positive integer identifier bounded by the shared INTEGER key range
//   - Amount: a non-negative monetary value where zero means "resolve it upstream"
//   - ClientContext: the tenant and actor attached to every inbound operation
//
// Values are immutable once constructed and safe for concurrent use.
package kernel
