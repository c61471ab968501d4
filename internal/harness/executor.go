package harness

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"go-payture-block/internal/errors"
	"go-payture-block/internal/logger"
)

type CapturedResponse struct {
	StatusCode int
	Body       string
}

// Executor sends GET requests through a single reused client.
type Executor struct {
	client *http.Client
	logger *logger.Logger
}

func NewExecutor(timeout time.Duration, lgr *logger.Logger) *Executor {
	return NewExecutorWithClient(&http.Client{Timeout: timeout}, lgr)
}

func NewExecutorWithClient(client *http.Client, lgr *logger.Logger) *Executor {
	return &Executor{client: client, logger: lgr}
}

// Execute blocks until the full body is read. Any failure to obtain a
// response is returned as *errors.TransportError.
func (e *Executor) Execute(ctx context.Context, spec RequestSpec) (*CapturedResponse, error) {
	target, err := spec.URL()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Request", map[string]interface{}{
		"method": req.Method,
		"url":    target,
	}, logger.ChannelHarness)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, errors.NewTransportError(spec.BaseURL, err)
	}
	defer resp.Body.Close()

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return nil, errors.NewTransportError(spec.BaseURL, err)
	}

	captured := &CapturedResponse{
		StatusCode: resp.StatusCode,
		Body:       responseBody.String(),
	}

	e.logger.Debug("Response", map[string]interface{}{
		"status_code": captured.StatusCode,
		"body":        captured.Body,
	}, logger.ChannelHarness)

	return captured, nil
}
