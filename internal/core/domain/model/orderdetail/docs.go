// Package orderdetail provides the OrderDetail aggregate: one schedulable unit
// of treatment sessions under an Order, optionally assigned to a professional.
//
// Invariants enforced here:
//   - sessions never exceeds total_sessions, and total_sessions stays within 0..31
//   - finish_date is not before start_date
//   - professional_fk moves only from null to a value (acceptance)
//   - finished_at, once set, is immutable and makes the detail terminal
//   - coinsurance, value and cost are non-negative; a zero value or cost means
//     "resolve from the pricing authority" and is never overwritten otherwise
package orderdetail
