package bus

import (
	"context"
	"encoding/json"

	"ordersvc/internal/adapters/in/payload"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
)

func claimResult(c *claim.Claim, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return queries.NewClaimResponse(c), nil
}

type createClaimMessage struct {
	tenantMessage
	Dto *payload.CreateClaimDto `json:"createClaimDto"`
}

func (h *Handlers) CreateClaim(ctx context.Context, data json.RawMessage) (any, error) {
	var msg createClaimMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	dto, err := required("createClaimDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}
	return claimResult(h.uc.CreateClaim.Handle(ctx, cmd))
}

type claimIDMessage struct {
	tenantMessage
	ClaimID int64 `json:"claim_id"`
}

func (h *Handlers) FindClaim(ctx context.Context, data json.RawMessage) (any, error) {
	var msg claimIDMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	query, err := queries.NewFindClaimQuery(cc, kernel.ID(msg.ClaimID))
	if err != nil {
		return nil, err
	}
	return h.uc.FindClaim.Handle(ctx, query)
}

type findClaimsMessage struct {
	tenantMessage
	Where      *payload.ClaimWhereInput `json:"whereInput"`
	Pagination *payload.Pagination      `json:"paginationDto"`
}

func (h *Handlers) FindClaims(ctx context.Context, data json.RawMessage) (any, error) {
	var msg findClaimsMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	query, err := msg.Where.Query(cc, msg.Pagination)
	if err != nil {
		return nil, err
	}
	return h.uc.FindClaims.Handle(ctx, query)
}

type updateClaimMessage struct {
	tenantMessage
	Dto *payload.UpdateClaimDto `json:"updateClaimDto"`
}

func (h *Handlers) UpdateClaim(ctx context.Context, data json.RawMessage) (any, error) {
	var msg updateClaimMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	dto, err := required("updateClaimDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}
	return claimResult(h.uc.UpdateClaim.Handle(ctx, cmd))
}

type deleteClaimMessage struct {
	tenantMessage
	Dto *payload.DeleteClaimDto `json:"deleteClaimDto"`
}

func (h *Handlers) DeleteClaim(ctx context.Context, data json.RawMessage) (any, error) {
	var msg deleteClaimMessage
	if err := decode(data, &msg); err != nil {
		return nil, err
	}
	cc, err := msg.clientContext()
	if err != nil {
		return nil, err
	}
	dto, err := required("deleteClaimDto", msg.Dto)
	if err != nil {
		return nil, err
	}
	cmd, err := dto.Command(cc)
	if err != nil {
		return nil, err
	}
	return claimResult(h.uc.DeleteClaim.Handle(ctx, cmd))
}
