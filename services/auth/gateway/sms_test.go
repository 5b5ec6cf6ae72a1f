package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arkananta/rantai/internal/pkg/models"
)

func TestFast2SMSGateway_SendOTP_Success(t *testing.T) {
	// Arrange: a stub provider that records the request
	var gotPath, gotAuth, gotContentType string
	var gotPayload smsPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("authorization")
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gw := NewFast2SMSGateway(models.SMSConfig{
		APIKey:         "test-api-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})

	// Act
	err := gw.SendOTP(context.Background(), "9999999999", "123456")

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "/dev/bulkV2", gotPath)
	assert.Equal(t, "test-api-key", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "otp", gotPayload.Route)
	assert.Equal(t, "9999999999", gotPayload.Numbers)
	assert.Equal(t, "123456", gotPayload.VariablesValues)
}

func TestFast2SMSGateway_SendOTP_MissingAPIKey(t *testing.T) {
	// Arrange
	gw := NewFast2SMSGateway(models.SMSConfig{
		BaseURL:        "http://localhost:0",
		TimeoutSeconds: 5,
	})

	// Act
	err := gw.SendOTP(context.Background(), "9999999999", "123456")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SMS API key is not configured")
}

func TestFast2SMSGateway_SendOTP_ProviderError(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"return":false,"message":"Invalid Authentication"}`))
	}))
	defer server.Close()

	gw := NewFast2SMSGateway(models.SMSConfig{
		APIKey:         "bad-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	})

	// Act
	err := gw.SendOTP(context.Background(), "9999999999", "123456")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SMS API returned status 401")
	assert.Contains(t, err.Error(), "Invalid Authentication")
}

func TestFast2SMSGateway_SendOTP_ConnectionError(t *testing.T) {
	// Arrange: server closed before the call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := NewFast2SMSGateway(models.SMSConfig{
		APIKey:         "test-api-key",
		BaseURL:        server.URL,
		TimeoutSeconds: 1,
	})

	// Act
	err := gw.SendOTP(context.Background(), "9999999999", "123456")

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to call SMS API")
}

func TestLogSMSGateway_SendOTP(t *testing.T) {
	// Arrange
	gw := NewLogSMSGateway()

	// Act
	err := gw.SendOTP(context.Background(), "9999999999", "123456")

	// Assert: log-only delivery never fails
	assert.NoError(t, err)
}
