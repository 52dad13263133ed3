package msgbus

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/tracing"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Client sends requests and waits for the matching reply. One subscription
// connection receives the replies of every pattern; they are routed to the
// waiting caller by request id. Replies nobody waits for any more are dropped.
type Client struct {
	rdb    *redis.Client
	logger *zap.Logger
	tracer trace.Tracer

	sub *redis.PubSub

	mu         sync.Mutex
	pending    map[string]chan Reply
	subscribed map[string]struct{}
	confirming map[string]chan struct{}

	done chan struct{}
}

// NewClient creates a request client over rdb. Call Start before Request.
func NewClient(rdb *redis.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		rdb:        rdb,
		logger:     logger.With(zap.String("component", "msgbus_client")),
		tracer:     tracing.Tracer("msgbus"),
		pending:    make(map[string]chan Reply),
		subscribed: make(map[string]struct{}),
		confirming: make(map[string]chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start subscribes to the reply channels of patterns and waits for Redis to
// confirm each subscription before returning.
func (c *Client) Start(ctx context.Context, patterns ...string) error {
	channels := make([]string, 0, len(patterns))
	for _, p := range patterns {
		channels = append(channels, ReplyChannel(p))
	}

	c.sub = c.rdb.Subscribe(ctx, channels...)
	for range channels {
		msg, err := c.sub.Receive(ctx)
		if err != nil {
			_ = c.sub.Close()
			return pkgerrors.Wrap(err, "subscribe to reply channels")
		}
		if _, ok := msg.(*redis.Subscription); !ok {
			_ = c.sub.Close()
			return pkgerrors.Errorf("unexpected message %T while subscribing", msg)
		}
	}

	c.mu.Lock()
	for _, p := range patterns {
		c.subscribed[p] = struct{}{}
	}
	c.mu.Unlock()

	go c.dispatch()
	return nil
}

// Send publishes data on pattern and decodes the reply response into out,
// which may be nil. It returns errs.UpstreamUnavailableError when ctx ends
// first or the message cannot be published, and errs.UpstreamRejectedError
// when the peer replies with an error.
func (c *Client) Send(ctx context.Context, pattern string, data any, out any) error {
	ctx, span := c.tracer.Start(ctx, "msgbus.send "+pattern,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("messaging.destination", pattern)))
	defer span.End()

	err := c.send(ctx, pattern, data, out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(errs.KindOf(err)))
	}
	return err
}

func (c *Client) send(ctx context.Context, pattern string, data any, out any) error {
	if err := c.ensureSubscribed(ctx, pattern); err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause(pattern, err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return pkgerrors.Wrapf(err, "encode %s request", pattern)
	}

	id := uuid.NewString()
	raw, err := json.Marshal(Request{Pattern: pattern, Data: payload, ID: id})
	if err != nil {
		return pkgerrors.Wrapf(err, "encode %s request", pattern)
	}

	replies := make(chan Reply, 1)
	c.mu.Lock()
	c.pending[id] = replies
	c.mu.Unlock()
	defer c.forget(id)

	if err = c.rdb.Publish(ctx, pattern, raw).Err(); err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause(pattern, pkgerrors.Wrap(err, "publish"))
	}

	select {
	case <-ctx.Done():
		return errs.NewUpstreamUnavailableErrorWithCause(pattern, ctx.Err())
	case <-c.done:
		return errs.NewUpstreamUnavailableErrorWithCause(pattern, pkgerrors.New("client closed"))
	case reply := <-replies:
		if reply.Err != nil {
			return reply.Err.asError(pattern)
		}
		if out == nil || len(reply.Response) == 0 {
			return nil
		}
		if err = json.Unmarshal(reply.Response, out); err != nil {
			return errs.NewUpstreamUnavailableErrorWithCause(pattern, pkgerrors.Wrap(err, "decode response"))
		}
		return nil
	}
}

// ensureSubscribed subscribes to the reply channel of a pattern that was not
// given to Start and blocks until Redis confirms the subscription, so the
// reply to the first request cannot be published before anyone listens.
func (c *Client) ensureSubscribed(ctx context.Context, pattern string) error {
	channel := ReplyChannel(pattern)

	c.mu.Lock()
	if c.sub == nil {
		c.mu.Unlock()
		return pkgerrors.New("client is not started")
	}
	if _, ok := c.subscribed[pattern]; ok {
		c.mu.Unlock()
		return nil
	}
	confirmed, inFlight := c.confirming[channel]
	if !inFlight {
		confirmed = make(chan struct{})
		c.confirming[channel] = confirmed
		if err := c.sub.Subscribe(ctx, channel); err != nil {
			delete(c.confirming, channel)
			c.mu.Unlock()
			return err
		}
	}
	c.mu.Unlock()

	select {
	case <-confirmed:
		return nil
	case <-ctx.Done():
		return pkgerrors.Wrapf(ctx.Err(), "subscribe to %s", channel)
	case <-c.done:
		return pkgerrors.New("client closed")
	}
}

// confirm marks the pattern behind a confirmed reply channel as subscribed and
// releases the callers waiting for it.
func (c *Client) confirm(sub *redis.Subscription) {
	if sub.Kind != "subscribe" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscribed[strings.TrimSuffix(sub.Channel, replySuffix)] = struct{}{}
	if confirmed, ok := c.confirming[sub.Channel]; ok {
		delete(c.confirming, sub.Channel)
		close(confirmed)
	}
}

func (c *Client) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

func (c *Client) dispatch() {
	defer close(c.done)

	for received := range c.sub.ChannelWithSubscriptions() {
		var msg *redis.Message
		switch m := received.(type) {
		case *redis.Subscription:
			c.confirm(m)
			continue
		case *redis.Message:
			msg = m
		default:
			continue
		}

		var reply Reply
		if err := json.Unmarshal([]byte(msg.Payload), &reply); err != nil {
			c.logger.Warn("bad reply payload", zap.String("channel", msg.Channel), zap.Error(err))
			continue
		}
		if reply.Err == nil && len(reply.Response) == 0 && !reply.IsDisposed {
			continue
		}

		c.mu.Lock()
		replies, ok := c.pending[reply.ID]
		if ok {
			delete(c.pending, reply.ID)
		}
		c.mu.Unlock()

		if !ok {
			c.logger.Debug("discarding late reply", zap.String("channel", msg.Channel), zap.String("id", reply.ID))
			continue
		}
		replies <- reply
	}
}

// Close stops receiving replies. Callers still waiting fail as unavailable.
func (c *Client) Close() error {
	if c.sub == nil {
		return nil
	}
	return c.sub.Close()
}
