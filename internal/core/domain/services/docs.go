// Package services holds stateless domain services of the order service.
//
// SessionCalculator turns a weekly frequency and a schedule window into the
// number of treatment sessions an OrderDetail is entitled to.
package services
