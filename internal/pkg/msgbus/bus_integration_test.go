package msgbus_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/msgbus"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const (
	sumPattern     = "test.sum"
	missingPattern = "test.missing"
	silentPattern  = "test.silent"
	echoPattern    = "test.echo"
)

type sumRequest struct {
	A int `json:"a"`
	B int `json:"b"`
}

// BusIntegrationTestSuite runs a client and a server against a real Redis.
type BusIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	rdb       *redis.Client
	client    *msgbus.Client
	cancel    context.CancelFunc
	stopped   chan error
}

func (suite *BusIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)
	suite.rdb = redis.NewClient(&redis.Options{Addr: endpoint})

	server := msgbus.NewServer(suite.rdb, zap.NewNop())
	server.Handle(sumPattern, func(_ context.Context, data json.RawMessage) (any, error) {
		var req sumRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("data", err)
		}
		return map[string]int{"value": req.A + req.B}, nil
	})
	server.Handle(echoPattern, func(_ context.Context, data json.RawMessage) (any, error) {
		return data, nil
	})
	server.Handle(missingPattern, func(context.Context, json.RawMessage) (any, error) {
		return nil, errs.NewObjectNotFoundError("professional_id", 42)
	})

	serveCtx, cancel := context.WithCancel(context.Background())
	suite.cancel = cancel
	ready := make(chan struct{})
	suite.stopped = make(chan error, 1)
	go func() { suite.stopped <- server.Serve(serveCtx, ready) }()
	<-ready

	suite.client = msgbus.NewClient(suite.rdb, zap.NewNop())
	suite.Require().NoError(suite.client.Start(ctx, sumPattern, missingPattern))
}

func (suite *BusIntegrationTestSuite) TearDownSuite() {
	suite.cancel()
	suite.Require().NoError(<-suite.stopped)
	suite.Require().NoError(suite.client.Close())
	suite.Require().NoError(suite.rdb.Close())
	suite.Require().NoError(suite.container.Terminate(context.Background()))
}

func (suite *BusIntegrationTestSuite) TestSend_ReturnsResponse() {
	var out struct {
		Value int `json:"value"`
	}
	err := suite.client.Send(context.Background(), sumPattern, sumRequest{A: 2, B: 3}, &out)
	suite.Require().NoError(err)
	suite.Equal(5, out.Value)
}

func (suite *BusIntegrationTestSuite) TestSend_ConcurrentRequestsGetTheirOwnReply() {
	type result struct {
		want, got int
		err       error
	}
	results := make(chan result, 20)
	for i := range 20 {
		go func() {
			var out struct {
				Value int `json:"value"`
			}
			err := suite.client.Send(context.Background(), sumPattern, sumRequest{A: i, B: i}, &out)
			results <- result{want: 2 * i, got: out.Value, err: err}
		}()
	}
	for range 20 {
		r := <-results
		suite.Require().NoError(r.err)
		suite.Equal(r.want, r.got)
	}
}

func (suite *BusIntegrationTestSuite) TestSend_PatternNotStartedIsSubscribedBeforePublishing() {
	type result struct {
		want, got int
		err       error
	}
	results := make(chan result, 10)
	for i := range 10 {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			var out map[string]int
			err := suite.client.Send(ctx, echoPattern, map[string]int{"n": i}, &out)
			results <- result{want: i, got: out["n"], err: err}
		}()
	}
	for range 10 {
		r := <-results
		suite.Require().NoError(r.err)
		suite.Equal(r.want, r.got)
	}
}

func (suite *BusIntegrationTestSuite) TestSend_PeerErrorKeepsItsKind() {
	err := suite.client.Send(context.Background(), missingPattern, map[string]int{}, nil)
	suite.Require().ErrorIs(err, errs.ErrUpstreamRejectedCall)
	suite.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (suite *BusIntegrationTestSuite) TestSend_NoAnswerIsUnavailable() {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := suite.client.Send(ctx, silentPattern, map[string]int{}, nil)
	suite.Require().ErrorIs(err, errs.ErrUpstreamUnavailable)
}

func TestBusIntegrationSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(BusIntegrationTestSuite))
}
