// Package email implements the outbound mail collaborator on top of the
// EmailJS REST API: a single JSON POST rendering a server-side template with
// the supplied parameters.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.emailjs.com/api/v1.0/email/send"

// Config identifies the EmailJS service and templates to render.
type Config struct {
	BaseURL         string
	ServiceID       string
	CodeTemplateID  string
	AlertTemplateID string
	PublicKey       string
	AppName         string
	// AlertsEmail receives stock alert notifications.
	AlertsEmail string
	Timeout     time.Duration
}

// Client sends templated emails through EmailJS.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{cfg: cfg, http: &http.Client{Timeout: timeout}}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams map[string]any `json:"template_params"`
}

// SendCode dispatches the verification-code template to recipientEmail.
func (c *Client) SendCode(ctx context.Context, recipientEmail, code string, ttlMinutes int) error {
	return c.send(ctx, c.cfg.CodeTemplateID, map[string]any{
		"to_email":    recipientEmail,
		"code":        code,
		"exp_minutes": ttlMinutes,
		"app_name":    c.cfg.AppName,
	})
}

// SendAlert dispatches the stock-alert template to the operations address.
func (c *Client) SendAlert(ctx context.Context, subject, message string) error {
	return c.send(ctx, c.cfg.AlertTemplateID, map[string]any{
		"to_email": c.cfg.AlertsEmail,
		"subject":  subject,
		"message":  message,
		"app_name": c.cfg.AppName,
	})
}

func (c *Client) send(ctx context.Context, templateID string, params map[string]any) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("email send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email send: status %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
