// Package gateway is the single choke point through which every remote
// backend operation is invoked. Operations are addressed by name; the
// caller supplies a JSON-serializable args object (carrying accessToken
// for authenticated operations) and a destination for the reply.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"codeventure_gateway/internal/config"
	"codeventure_gateway/pkg/logger"
	"codeventure_gateway/pkg/monitoring"
	"codeventure_gateway/pkg/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Invoker is the named-operation invocation primitive consumed by the
// service layer. Exactly one remote attempt is made per call; there are
// no retries at this level.
type Invoker interface {
	Invoke(ctx context.Context, operation string, args map[string]any, out any) error
}

// Error carries the remote failure back to the caller with enough
// context for the UI to display.
type Error struct {
	Operation string
	Status    int
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway: %s failed (status %d): %s", e.Operation, e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg *config.GatewayConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *Client) Invoke(ctx context.Context, operation string, args map[string]any, out any) error {
	ctx, span := tracing.Tracer.Start(ctx, "gateway.invoke")
	defer span.End()
	span.SetAttributes(attribute.String("gateway.operation", operation))

	requestID := uuid.NewString()
	start := time.Now()

	err := c.invoke(ctx, operation, requestID, args, out)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	monitoring.ObserveInvocation(operation, outcome, time.Since(start))

	if err != nil {
		logger.Log.Warn("remote command failed",
			zap.String("operation", operation),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Debug("remote command completed",
		zap.String("operation", operation),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func (c *Client) invoke(ctx context.Context, operation, requestID string, args map[string]any, out any) error {
	if args == nil {
		args = map[string]any{}
	}

	body, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode args for %s: %w", operation, err)
	}

	url := fmt.Sprintf("%s/commands/%s", c.baseURL, operation)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("invoke %s: %w", operation, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s reply: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Operation: operation,
			Status:    resp.StatusCode,
			Message:   remoteMessage(payload),
		}
	}

	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s reply: %w", operation, err)
	}
	return nil
}

// remoteMessage digs a human-readable message out of an error reply.
func remoteMessage(payload []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	if len(payload) > 0 {
		return string(payload)
	}
	return "no error detail"
}
