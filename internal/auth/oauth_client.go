package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const sessionDataPath = "/auth/v1/env/oauth/session-data"

// SessionData is the profile returned by the external session exchange.
type SessionData struct {
	SessionToken string `json:"session_token"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
}

// SessionExchanger trades a one-time session id for a session token and
// the verified user profile.
type SessionExchanger interface {
	ExchangeSession(ctx context.Context, sessionID string) (*SessionData, error)
}

// OAuthClient calls the external OAuth provider over HTTP.
type OAuthClient struct {
	client *resty.Client
}

// Ensure OAuthClient implements SessionExchanger
var _ SessionExchanger = (*OAuthClient)(nil)

// NewOAuthClient creates a client against the provider base URL.
func NewOAuthClient(baseURL string) *OAuthClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)
	return &OAuthClient{client: client}
}

// ExchangeSession fetches session data for a one-time session id. Any
// transport or non-2xx failure is surfaced to the caller; the login
// endpoint reports it as a bad request.
func (c *OAuthClient) ExchangeSession(ctx context.Context, sessionID string) (*SessionData, error) {
	var data SessionData
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Session-ID", sessionID).
		SetResult(&data).
		Get(sessionDataPath)
	if err != nil {
		return nil, fmt.Errorf("session data request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("session data request: status %d", resp.StatusCode())
	}
	if data.SessionToken == "" || data.Email == "" {
		return nil, fmt.Errorf("session data response missing token or email")
	}
	return &data, nil
}
