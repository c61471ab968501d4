package errors

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	stderrors "errors"
	"fmt"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"go-payture-block/internal/logger"
)

// TransportKind says why the gateway could not be reached.
type TransportKind string

const (
	KindTimeout           TransportKind = "timeout"
	KindConnectionRefused TransportKind = "connection_refused"
	KindTLS               TransportKind = "tls"
	KindNetwork           TransportKind = "network"
	// KindCanceled means the run was stopped, not that the service failed.
	KindCanceled TransportKind = "canceled"
)

const (
	TypeTransport = "transport_error"
	TypeAssertion = "assertion_error"
	TypeInternal  = "internal_error"
	TypeRequest   = "request_error"
)

// TransportError means no HTTP response was captured.
type TransportError struct {
	Kind TransportKind
	URL  string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach service (%s): %v", e.Kind, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NewTransportError classifies err by the failure it wraps.
func NewTransportError(url string, err error) *TransportError {
	return &TransportError{Kind: classify(err), URL: url, Err: err}
}

func classify(err error) TransportKind {
	if stderrors.Is(err, context.Canceled) {
		return KindCanceled
	}
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return KindTimeout
	}
	if stderrors.Is(err, syscall.ECONNREFUSED) {
		return KindConnectionRefused
	}
	var (
		recordErr    tls.RecordHeaderError
		verifyErr    *tls.CertificateVerificationError
		authorityErr x509.UnknownAuthorityError
		hostErr      x509.HostnameError
		invalidErr   x509.CertificateInvalidError
	)
	if stderrors.As(err, &recordErr) || stderrors.As(err, &verifyErr) ||
		stderrors.As(err, &authorityErr) || stderrors.As(err, &hostErr) ||
		stderrors.As(err, &invalidErr) {
		return KindTLS
	}
	return KindNetwork
}

// AssertionError is a captured response that did not satisfy an expectation.
type AssertionError struct {
	Expectation string
	Expected    string
	Actual      string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("expectation failed: %s\n  expected: %s\n  actual:   %s", e.Expectation, e.Expected, e.Actual)
}

func IsTransport(err error) bool {
	var te *TransportError
	return stderrors.As(err, &te)
}

// IsCanceled reports whether err ended a request because the run was canceled.
func IsCanceled(err error) bool {
	var te *TransportError
	return stderrors.As(err, &te) && te.Kind == KindCanceled
}

func IsAssertion(err error) bool {
	var ae *AssertionError
	return stderrors.As(err, &ae)
}

type ErrorHandler struct {
	logger    *logger.Logger
	debugMode bool
}

// Failure is the reported form of a case error.
type Failure struct {
	ID        string                 `json:"id"`
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	Context   string                 `json:"context"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func New(logger *logger.Logger, debugMode bool) *ErrorHandler {
	return &ErrorHandler{
		logger:    logger,
		debugMode: debugMode,
	}
}

// Classify turns err into a Failure record and logs it on the harness channel.
func (eh *ErrorHandler) Classify(err error, context string) Failure {
	failure := Failure{
		ID:        uuid.New().String(),
		Code:      "INTERNAL_ERROR",
		Message:   err.Error(),
		Type:      TypeInternal,
		Context:   context,
		Timestamp: time.Now(),
	}

	var (
		te *TransportError
		ae *AssertionError
	)
	switch {
	case stderrors.As(err, &te):
		failure.Code = "TRANSPORT_" + strings.ToUpper(string(te.Kind))
		failure.Type = TypeTransport
		failure.Details = map[string]interface{}{"url": te.URL}
		if eh.debugMode {
			failure.Details["cause"] = te.Err.Error()
		}
	case stderrors.As(err, &ae):
		failure.Code = "EXPECTATION_FAILED"
		failure.Type = TypeAssertion
		failure.Details = map[string]interface{}{
			"expectation": ae.Expectation,
			"expected":    ae.Expected,
			"actual":      ae.Actual,
		}
	}

	fields := map[string]interface{}{
		"error_id": failure.ID,
		"code":     failure.Code,
		"context":  context,
	}
	if failure.Type == TypeAssertion {
		eh.logger.Warning("Expectation failed", fields, logger.ChannelHarness)
	} else {
		fields["error"] = err.Error()
		eh.logger.Error("Case error", fields, logger.ChannelHarness)
	}

	return failure
}

// HandleRequestError reports a bad request received by the sandbox gateway.
func (eh *ErrorHandler) HandleRequestError(err error, context string) Failure {
	failure := Failure{
		ID:        uuid.New().String(),
		Code:      "INVALID_REQUEST",
		Message:   "Invalid request parameters",
		Type:      TypeRequest,
		Context:   context,
		Timestamp: time.Now(),
	}

	if eh.debugMode {
		failure.Message = err.Error()
	}

	eh.logger.Warning("Invalid request", map[string]interface{}{
		"error_id": failure.ID,
		"error":    err.Error(),
		"context":  context,
	}, logger.ChannelGateway)

	return failure
}
