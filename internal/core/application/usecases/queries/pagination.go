// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return flat read models shaped like the documents the peer services
// already consume.
package queries

import (
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/errs"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is an offset window over a result ordered by primary key. Rows inserted
// while a caller walks the pages can shift later pages.
type Page struct {
	limit  int
	offset int
}

// NewPage validates limit and offset. A zero limit selects DefaultLimit.
func NewPage(limit, offset int) (Page, error) {
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxLimit)
	}
	if offset < 0 {
		return Page{}, errs.NewValueIsOutOfRangeError("offset", offset, 0, "+inf")
	}
	return Page{limit: limit, offset: offset}, nil
}

// FirstPage is the default window.
func FirstPage() Page {
	return Page{limit: DefaultLimit}
}

func (p Page) Limit() int {
	if p.limit == 0 {
		return DefaultLimit
	}
	return p.limit
}

func (p Page) Offset() int {
	return p.offset
}

func (p Page) apply(db *gorm.DB) *gorm.DB {
	return db.Limit(p.Limit()).Offset(p.Offset())
}

func checkID(paramName string, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return nil
}

func optionalID(paramName string, id *kernel.ID) error {
	if id == nil {
		return nil
	}
	return checkID(paramName, *id)
}
