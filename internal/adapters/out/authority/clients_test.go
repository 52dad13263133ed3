package authority_test

import (
	"context"
	"encoding/json"
	"testing"

	"ordersvc/internal/adapters/out/authority"
	"ordersvc/internal/core/domain/model/kernel"
	"ordersvc/internal/core/domain/model/order"
	"ordersvc/internal/core/ports"
	"ordersvc/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRequester struct {
	mock.Mock
}

func (m *MockRequester) Send(ctx context.Context, pattern string, data any, out any) error {
	args := m.Called(ctx, pattern, data, out)
	return args.Error(0)
}

// replyWith decodes raw into the out argument, the way the bus client does.
func replyWith(raw string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		if err := json.Unmarshal([]byte(raw), args.Get(3)); err != nil {
			panic(err)
		}
	}
}

// wire encodes a request the way it would travel.
func wire(t *testing.T, data any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

var cc = kernel.MustNewClientContext(10, "65f0c0ffee")

func TestCoordinatorClient_ValidateCoordinator(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  bool
	}{
		{name: "document", reply: `{"coordinator_id": 3}`, want: true},
		{name: "true", reply: `true`, want: true},
		{name: "null", reply: `null`, want: false},
		{name: "false", reply: `false`, want: false},
		{name: "empty document", reply: `{}`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &MockRequester{}
			var sent any
			bus.On("Send", mock.Anything, ports.TopicValidateCoordinator, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					sent = args.Get(2)
					replyWith(tt.reply)(args)
				}).
				Return(nil).Once()

			ok, err := authority.NewCoordinatorClient(bus).ValidateCoordinator(t.Context(), cc,
				order.References{CompanyID: 1, PatientID: 2, TreatmentID: 3})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)

			payload := wire(t, sent)
			assert.Equal(t, map[string]any{"client_id": float64(10), "mongo_id": "65f0c0ffee"}, payload["currentClient"])
			assert.Equal(t, map[string]any{"company_fk": float64(1), "treatment_fk": float64(3), "patient_fk": float64(2)},
				payload["compositeIdDto"])
			bus.AssertExpectations(t)
		})
	}
}

func TestCoordinatorClient_PricingAcceptsNumbersAndStrings(t *testing.T) {
	tests := []struct {
		reply string
		want  kernel.Amount
	}{
		{reply: `{"value": 42.5}`, want: 42.5},
		{reply: `{"value": "17.25"}`, want: 17.25},
		{reply: `{"value": null}`, want: 0},
		{reply: `{}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.reply, func(t *testing.T) {
			bus := &MockRequester{}
			bus.On("Send", mock.Anything, ports.TopicTreatmentPrice, mock.Anything, mock.Anything).
				Run(replyWith(tt.reply)).Return(nil).Once()

			price, err := authority.NewCoordinatorClient(bus).TreatmentPrice(t.Context(), cc, 1, 3)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Float64(), price.Float64(), 0.0001)
		})
	}
}

func TestCoordinatorClient_ProfessionalCost(t *testing.T) {
	bus := &MockRequester{}
	var sent any
	bus.On("Send", mock.Anything, ports.TopicProfessionalCost, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2)
			replyWith(`{"value": "not a number"}`)(args)
		}).
		Return(nil).Once()

	_, err := authority.NewCoordinatorClient(bus).ProfessionalCost(t.Context(), cc, 1, 3, 42)
	require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)

	composite, ok := wire(t, sent)["compositeIdDto"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(42), composite["professional_fk"])
	assert.NotContains(t, composite, "patient_fk")
}

func TestCoordinatorClient_PropagatesBusErrors(t *testing.T) {
	bus := &MockRequester{}
	unavailable := errs.NewUpstreamUnavailableError(ports.TopicTreatmentPrice)
	bus.On("Send", mock.Anything, ports.TopicTreatmentPrice, mock.Anything, mock.Anything).Return(unavailable).Once()

	_, err := authority.NewCoordinatorClient(bus).TreatmentPrice(t.Context(), cc, 1, 3)
	require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestCommunityClient_FindProfessional(t *testing.T) {
	bus := &MockRequester{}
	var sent any
	bus.On("Send", mock.Anything, ports.TopicFindProfessional, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2)
			replyWith(`{"client_fk": 10, "professional_fk": 42}`)(args)
		}).
		Return(nil).Once()
	bus.On("Send", mock.Anything, ports.TopicFindProfessional, mock.Anything, mock.Anything).
		Run(replyWith(`null`)).Return(nil).Once()

	client := authority.NewCommunityClient(bus)

	ok, err := client.FindProfessional(t.Context(), 10, 42)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"client_fk": float64(10), "professional_fk": float64(42)}, wire(t, sent)["relation"])

	ok, err = client.FindProfessional(t.Context(), 10, 43)
	require.NoError(t, err)
	assert.False(t, ok)
}
