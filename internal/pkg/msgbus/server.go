package msgbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"ordersvc/internal/pkg/errs"
	"ordersvc/internal/pkg/tracing"

	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// HandlerFunc serves one request. The returned value is encoded as the reply
// response; a returned error is encoded as the reply err.
type HandlerFunc func(ctx context.Context, data json.RawMessage) (any, error)

// Server subscribes to the registered patterns and runs every request on its
// own goroutine.
type Server struct {
	rdb    *redis.Client
	logger *zap.Logger
	tracer trace.Tracer

	handlers map[string]HandlerFunc
	inflight sync.WaitGroup
}

// NewServer creates a topic server over rdb.
func NewServer(rdb *redis.Client, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		rdb:      rdb,
		logger:   logger.With(zap.String("component", "msgbus_server")),
		tracer:   tracing.Tracer("msgbus"),
		handlers: make(map[string]HandlerFunc),
	}
}

// Handle registers h for pattern. It must be called before Serve.
func (s *Server) Handle(pattern string, h HandlerFunc) {
	s.handlers[pattern] = h
}

// Patterns returns the registered topics in sorted order.
func (s *Server) Patterns() []string {
	patterns := make([]string, 0, len(s.handlers))
	for p := range s.handlers {
		patterns = append(patterns, p)
	}
	return patterns
}

// Serve blocks until ctx is done, then waits for the requests in flight.
// ready, when not nil, is closed once every subscription is confirmed.
func (s *Server) Serve(ctx context.Context, ready chan<- struct{}) error {
	patterns := s.Patterns()
	if len(patterns) == 0 {
		return pkgerrors.New("no handlers registered")
	}

	sub := s.rdb.Subscribe(ctx, patterns...)
	defer func() { _ = sub.Close() }()

	for range patterns {
		msg, err := sub.Receive(ctx)
		if err != nil {
			return pkgerrors.Wrap(err, "subscribe to request channels")
		}
		if _, ok := msg.(*redis.Subscription); !ok {
			return pkgerrors.Errorf("unexpected message %T while subscribing", msg)
		}
	}
	s.logger.Info("bus server listening", zap.Int("patterns", len(patterns)))
	if ready != nil {
		close(ready)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			s.inflight.Wait()
			return nil
		case msg, ok := <-ch:
			if !ok {
				s.inflight.Wait()
				return nil
			}
			s.inflight.Add(1)
			go func() {
				defer s.inflight.Done()
				s.serveMessage(context.WithoutCancel(ctx), msg)
			}()
		}
	}
}

func (s *Server) serveMessage(ctx context.Context, msg *redis.Message) {
	var req Request
	if err := json.Unmarshal([]byte(msg.Payload), &req); err != nil {
		s.logger.Warn("bad request payload", zap.String("channel", msg.Channel), zap.Error(err))
		return
	}
	pattern := msg.Channel

	ctx, span := s.tracer.Start(ctx, "msgbus.handle "+pattern,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("messaging.destination", pattern)))
	defer span.End()

	response, err := s.invoke(ctx, pattern, req.Data)
	reply := Reply{ID: req.ID, IsDisposed: true}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(errs.KindOf(err)))
		reply.Err = NewErrorBody(err)
		s.logRequestError(pattern, req.ID, err)
	} else if reply.Response, err = json.Marshal(response); err != nil {
		reply.Response = nil
		reply.Err = NewErrorBody(pkgerrors.Wrap(err, "encode response"))
	}

	if req.ID == "" {
		return
	}
	raw, err := json.Marshal(reply)
	if err != nil {
		s.logger.Error("encode reply", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if err = s.rdb.Publish(ctx, ReplyChannel(pattern), raw).Err(); err != nil {
		s.logger.Error("publish reply", zap.String("pattern", pattern), zap.Error(err))
	}
}

func (s *Server) invoke(ctx context.Context, pattern string, data json.RawMessage) (response any, err error) {
	h, ok := s.handlers[pattern]
	if !ok {
		return nil, errs.NewObjectNotFoundError("pattern", pattern)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(ctx, data)
}

func (s *Server) logRequestError(pattern, id string, err error) {
	fields := []zap.Field{
		zap.String("pattern", pattern),
		zap.String("id", id),
		zap.String("kind", string(errs.KindOf(err))),
		zap.Error(err),
	}
	if errs.KindOf(err) == errs.KindInternal {
		s.logger.Error("request failed", fields...)
		return
	}
	s.logger.Info("request rejected", fields...)
}
