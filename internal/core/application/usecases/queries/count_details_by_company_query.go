package queries

import (
	"context"
	"errors"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountDetailsByCompanyQueryIsNotConstructed = errors.New(
	"CountDetailsByCompanyQuery must be created via NewCountDetailsByCompanyQuery constructor",
)

// CountDetailsByCompanyQuery counts the unfinished details whose order belongs
// to a company. The company is the scope; it is not filtered by tenant.
type CountDetailsByCompanyQuery struct {
	companyID kernel.ID
	guard     guard.ConstructorGuard
}

func NewCountDetailsByCompanyQuery(companyID kernel.ID) (CountDetailsByCompanyQuery, error) {
	if err := checkID("company_id", companyID); err != nil {
		return CountDetailsByCompanyQuery{}, err
	}
	return CountDetailsByCompanyQuery{companyID: companyID, guard: guard.NewConstructorGuard()}, nil
}

func (q CountDetailsByCompanyQuery) Validate() error {
	return q.guard.Validate(ErrCountDetailsByCompanyQueryIsNotConstructed)
}

func (q CountDetailsByCompanyQuery) CompanyID() kernel.ID {
	return q.companyID
}

// CountDetailsByCompanyQueryHandler handles CountDetailsByCompanyQuery.
type CountDetailsByCompanyQueryHandler struct {
	db *gorm.DB
}

// NewCountDetailsByCompanyQueryHandler creates a handler for counting the open details of a company.
// Requires a GORM database connection for query execution.
func NewCountDetailsByCompanyQueryHandler(db *gorm.DB) CountDetailsByCompanyQueryHandler {
	return CountDetailsByCompanyQueryHandler{db: db}
}

func (h CountDetailsByCompanyQueryHandler) Handle(ctx context.Context, query CountDetailsByCompanyQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM order_details d
		JOIN orders o ON o.order_id = d.order_fk
		WHERE o.company_fk = ? AND d.finished_at IS NULL
	`, query.CompanyID().Int64()).Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
