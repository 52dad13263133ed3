package authority

import (
	"context"
	"encoding/json"

	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/ports"
)

var _ ports.CommunityClient = (*CommunityClient)(nil)

// CommunityClient checks professional memberships with the community service.
type CommunityClient struct {
	bus Requester
}

// NewCommunityClient creates a client publishing on the community topic.
func NewCommunityClient(bus Requester) *CommunityClient {
	return &CommunityClient{bus: bus}
}

// FindProfessional asks for the relationship record; an empty answer means the
// professional does not work for the tenant.
func (c *CommunityClient) FindProfessional(ctx context.Context, clientID, professionalID kernel.ID) (bool, error) {
	req := relationRequest{Relation: relation{
		ClientID:       clientID.Int64(),
		ProfessionalID: professionalID.Int64(),
	}}

	var reply json.RawMessage
	if err := c.bus.Send(ctx, ports.TopicFindProfessional, req, &reply); err != nil {
		return false, err
	}
	return truthy(reply), nil
}
