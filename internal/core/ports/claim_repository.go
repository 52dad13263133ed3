package ports

import (
	"context"

	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
)

// ClaimRepository defines the persistence contract for claims.
type ClaimRepository interface {
	Add(ctx context.Context, aggregate *claim.Claim) error
	Get(ctx context.Context, clientID kernel.ID, claimID kernel.ID) (*claim.Claim, error)

	// Update is conditional on deleted_at IS NULL.
	Update(ctx context.Context, aggregate *claim.Claim, fields []claim.Field) error
}
