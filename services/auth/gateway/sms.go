package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	httppkg "github.com/arkananta/rantai/internal/pkg/http"
	"github.com/arkananta/rantai/internal/pkg/logger"
	"github.com/arkananta/rantai/internal/pkg/models"
)

// bulkV2Path is the Fast2SMS OTP-route endpoint
const bulkV2Path = "/dev/bulkV2"

// smsPayload is the Fast2SMS OTP-route request body
type smsPayload struct {
	Route           string `json:"route"`
	Numbers         string `json:"numbers"`
	VariablesValues string `json:"variables_values"`
}

// Fast2SMSGateway delivers OTP codes through the Fast2SMS bulk API
type Fast2SMSGateway struct {
	cfg    models.SMSConfig
	client *httppkg.Client
}

// NewFast2SMSGateway creates an SMS gateway for the Fast2SMS bulk API
func NewFast2SMSGateway(cfg models.SMSConfig) *Fast2SMSGateway {
	return &Fast2SMSGateway{
		cfg:    cfg,
		client: httppkg.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSeconds)*time.Second),
	}
}

// SendOTP dispatches the code to the mobile number over SMS. A missing
// credential is a delivery failure, never a crash.
func (g *Fast2SMSGateway) SendOTP(ctx context.Context, mobile, code string) error {
	if g.cfg.APIKey == "" {
		return fmt.Errorf("SMS API key is not configured")
	}

	payload := smsPayload{
		Route:           "otp",
		Numbers:         mobile,
		VariablesValues: code,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SMS payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.client.BaseURL+bulkV2Path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create SMS request: %w", err)
	}
	req.Header.Set("authorization", g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call SMS API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("SMS API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

// LogSMSGateway logs the code instead of sending it, for environments
// without SMS credentials
type LogSMSGateway struct{}

// NewLogSMSGateway creates a log-only SMS gateway
func NewLogSMSGateway() *LogSMSGateway {
	return &LogSMSGateway{}
}

// SendOTP logs the generated code
func (g *LogSMSGateway) SendOTP(_ context.Context, mobile, code string) error {
	logger.Info("Generated OTP",
		logger.String("mobile", mobile),
		logger.String("otp_code", code))
	return nil
}
