package payload

import (
	"errors"

	"ordersvc/internal/core/application/usecases/commands"
	"ordersvc/internal/core/application/usecases/queries"
	"ordersvc/internal/core/domain/model/claim"
	"ordersvc/internal/core/domain/model/kernel"
)

type CreateClaimDto struct {
	UpdatedBy    int64  `json:"updated_by"`
	DetailID     int64  `json:"detail_fk"`
	Cause        string `json:"cause"`
	Urgency      string `json:"urgency"`
	ReportedDate Date   `json:"reported_date"`
}

func (d CreateClaimDto) Command(cc kernel.ClientContext) (commands.CreateClaimCommand, error) {
	urgency, err := claim.ParseUrgency(d.Urgency)
	if err != nil {
		return commands.CreateClaimCommand{}, err
	}
	return commands.NewCreateClaimCommand(cc, kernel.ID(d.UpdatedBy), kernel.ID(d.DetailID),
		d.Cause, urgency, d.ReportedDate.Time)
}

type UpdateClaimDto struct {
	ClaimID      int64   `json:"claim_id"`
	UpdatedBy    int64   `json:"updated_by"`
	DetailID     *int64  `json:"detail_fk,omitempty"`
	Cause        *string `json:"cause,omitempty"`
	Urgency      *string `json:"urgency,omitempty"`
	ReportedDate *Date   `json:"reported_date,omitempty"`
}

func (d UpdateClaimDto) Command(cc kernel.ClientContext) (commands.UpdateClaimCommand, error) {
	patch := claim.Patch{
		DetailID:     idPtr(d.DetailID),
		Cause:        d.Cause,
		ReportedDate: timePtr(d.ReportedDate),
	}
	if d.Urgency != nil {
		urgency, err := claim.ParseUrgency(*d.Urgency)
		if err != nil {
			return commands.UpdateClaimCommand{}, err
		}
		patch.Urgency = &urgency
	}
	return commands.NewUpdateClaimCommand(cc, kernel.ID(d.UpdatedBy), kernel.ID(d.ClaimID), patch)
}

type DeleteClaimDto struct {
	ClaimID   int64 `json:"claim_id"`
	UpdatedBy int64 `json:"updated_by"`
}

func (d DeleteClaimDto) Command(cc kernel.ClientContext) (commands.DeleteClaimCommand, error) {
	return commands.NewDeleteClaimCommand(cc, kernel.ID(d.UpdatedBy), kernel.ID(d.ClaimID))
}

type ClaimWhereInput struct {
	DetailID       *int64 `json:"detail_fk,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
}

func (w *ClaimWhereInput) Query(cc kernel.ClientContext, pagination *Pagination) (queries.FindClaimsQuery, error) {
	var criteria queries.ClaimCriteria
	if w != nil {
		criteria = queries.ClaimCriteria{DetailID: idPtr(w.DetailID), IncludeDeleted: w.IncludeDeleted}
	}

	page, err := pagination.Page()
	query, qErr := queries.NewFindClaimsQuery(cc, criteria, page)
	if err = errors.Join(err, qErr); err != nil {
		return queries.FindClaimsQuery{}, err
	}
	return query, nil
}
