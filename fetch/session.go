package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/fetchkit/logger"
)

const instrumentationName = "github.com/kbukum/fetchkit/fetch"

// Session is a caller-held handle on the transfer subsystem. Create one
// with New before issuing requests and release it with Close when no more
// requests will be made. A Session is safe for concurrent use; each call
// blocks until its transfer completes or fails locally.
type Session struct {
	httpClient *http.Client
	config     Config
	log        *logger.Logger
	tracer     trace.Tracer
	requests   metric.Int64Counter
	closeOnce  sync.Once
	closed     atomic.Bool
}

// Option configures a Session beyond its Config.
type Option func(*Session)

// WithLogger overrides the session logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.log = l.WithComponent("fetch")
	}
}

// New creates a Session with the given configuration. This is the one
// explicit setup step; request calls assume it has already happened and
// never initialize anything themselves.
func New(cfg Config, opts ...Option) (*Session, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	requests, err := otel.Meter(instrumentationName).Int64Counter(
		"fetch.requests",
		metric.WithDescription("Number of requests issued by the session."),
	)
	if err != nil {
		return nil, fmt.Errorf("fetch: create request counter: %w", err)
	}

	s := &Session{
		httpClient: &http.Client{
			Transport: newTransport(cfg),
			Timeout:   cfg.Timeout,
		},
		config:   cfg,
		log:      logger.WithComponent("fetch"),
		tracer:   otel.Tracer(instrumentationName),
		requests: requests,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Get issues a blocking GET request to host:port/path and accumulates the
// response body. The raw status code is returned in the Response even for
// non-2xx completions.
func (s *Session) Get(ctx context.Context, host string, port int, path string) (*Response, error) {
	return s.Do(ctx, Request{
		Method: http.MethodGet,
		Host:   host,
		Port:   port,
		Path:   path,
	})
}

// Post issues a blocking POST request with body as the payload. The three
// fixed JSON-oriented headers are applied unconditionally; they are not
// configurable.
func (s *Session) Post(ctx context.Context, host string, port int, path string, body []byte) (*Response, error) {
	if body == nil {
		body = []byte{}
	}
	return s.Do(ctx, Request{
		Method: http.MethodPost,
		Host:   host,
		Port:   port,
		Path:   path,
		Body:   body,
	})
}

// Do executes one exchange. A nil Body with an empty Method means GET; a
// non-nil Body means POST with the fixed headers.
func (s *Session) Do(ctx context.Context, req Request) (*Response, error) {
	if s.closed.Load() {
		return nil, NewValidationError("session is closed")
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
		if req.Body != nil {
			method = http.MethodPost
		}
	}

	target, err := BuildTarget(req.Host, req.Port, req.Path)
	if err != nil {
		s.log.WithError(err).Error("target construction failed",
			logger.Fields("host", req.Host, "port", req.Port, "path", req.Path))
		return nil, err
	}

	requestID := uuid.New().String()
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, "fetch "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", method),
			attribute.String("fetch.target", target),
		),
	)
	defer span.End()

	resp, err := s.execute(ctx, method, target, req.Body)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	s.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.Int("status", status),
	))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.WithError(err).Error("request failed", logger.Fields(
			logger.FieldRequestID, requestID,
			logger.FieldTarget, target,
			logger.FieldDuration, time.Since(start).Milliseconds(),
		))
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", status))
	s.log.Debug("request completed", logger.Fields(
		logger.FieldRequestID, requestID,
		logger.FieldTarget, target,
		logger.FieldStatus, status,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))

	return resp, nil
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (s *Session) Unwrap() *http.Client {
	return s.httpClient
}

// Close releases the session. Idempotent: repeat calls are no-ops, and a
// closed session rejects further requests with a validation error.
func (s *Session) Close(_ context.Context) error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		s.httpClient.CloseIdleConnections()
	})
	return nil
}

// execute builds and sends the HTTP request, streaming the response body
// into a Buffer sink.
func (s *Session) execute(ctx context.Context, method, target string, payload []byte) (*Response, error) {
	var body io.Reader
	if payload != nil {
		body = NewPayloadSource(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, "http://"+target, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}

	if payload != nil {
		httpReq.ContentLength = int64(len(payload))
		httpReq.Header.Set("Accept", "application/json")
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("charsets", "utf-8")
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	sink := NewBuffer()
	if _, err := io.Copy(sink, resp.Body); err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       sink.Bytes(),
	}, nil
}
