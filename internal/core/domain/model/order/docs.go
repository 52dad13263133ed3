// Package order provides the Order aggregate: a treatment plan prescribed to a
// patient by a company for one treatment, at a weekly frequency.
//
// Key business rules:
//   - Orders are tenant-owned; the tenant never changes after creation
//   - Company, patient and treatment references are positive identifiers
//   - Frequency is within 1..7 sessions per week
//   - Deletion is soft and terminal; a deleted order cannot be patched or deleted again
//
// Cross-service confirmation of the references is not the aggregate's concern;
// the application layer asks the coordinator authority before persisting.
package order
