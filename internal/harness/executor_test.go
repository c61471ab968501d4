package harness

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payture-block/internal/errors"
	"go-payture-block/internal/logger"
)

func TestExecuteCapturesStatusAndBody(t *testing.T) {
	var rawQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte(`<Block Success="True"/>`))
	}))
	defer server.Close()

	executor := NewExecutor(5*time.Second, logger.Discard())
	resp, err := executor.Execute(context.Background(), NewRequest(server.URL+"/api/Block").With("Key", "Merchant"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, `<Block Success="True"/>`, resp.Body)
	assert.Equal(t, "Key=Merchant", rawQuery)
}

func TestExecuteConnectionRefused(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	listener.Close()

	executor := NewExecutor(5*time.Second, logger.Discard())
	_, err = executor.Execute(context.Background(), NewRequest("http://"+addr+"/api/Block"))
	require.Error(t, err)

	var te *errors.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, errors.KindConnectionRefused, te.Kind)
	assert.False(t, errors.IsAssertion(err))
}

func TestExecuteTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	executor := NewExecutor(50*time.Millisecond, logger.Discard())
	_, err := executor.Execute(context.Background(), NewRequest(server.URL))

	var te *errors.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, errors.KindTimeout, te.Kind)
}

func TestExecuteTLSFailure(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	// The default client does not trust the test server's certificate.
	executor := NewExecutor(5*time.Second, logger.Discard())
	_, err := executor.Execute(context.Background(), NewRequest(server.URL))

	var te *errors.TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, errors.KindTLS, te.Kind)
}

func TestExecuteInvalidURLIsNotTransport(t *testing.T) {
	executor := NewExecutor(time.Second, logger.Discard())
	_, err := executor.Execute(context.Background(), NewRequest("not-a-url"))
	require.Error(t, err)
	assert.False(t, errors.IsTransport(err))
}
