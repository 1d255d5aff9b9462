package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hsati/directory-backend/internal/domain/identity"
	"github.com/hsati/directory-backend/internal/domain/shared"
)

// ProviderClient talks to a GoTrue-compatible hosted identity provider. The
// provider owns accounts and sessions; this backend only exchanges tokens
// for user identities and relays password logins.
type ProviderClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option configures a ProviderClient
type Option func(*ProviderClient)

// WithHTTPClient overrides the underlying HTTP client, mainly for tests
func WithHTTPClient(c *http.Client) Option {
	return func(p *ProviderClient) {
		p.httpClient = c
	}
}

// NewProviderClient creates a provider client. timeout bounds every request
// to the provider.
func NewProviderClient(baseURL, apiKey string, timeout time.Duration, opts ...Option) *ProviderClient {
	p := &ProviderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type providerUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type providerSession struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	RefreshToken string       `json:"refresh_token"`
	User         providerUser `json:"user"`
}

type providerError struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (e *providerError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrorDescription
}

// GetUser exchanges a bearer token for the user it belongs to. Any provider
// rejection maps to the unauthenticated error; the caller never learns
// whether the token was expired, malformed or revoked.
func (p *ProviderClient) GetUser(ctx context.Context, accessToken string) (*identity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, shared.NewDependencyError("identity provider", err)
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, shared.ErrUnauthenticated
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, shared.ErrUnauthenticated
	}

	var u providerUser
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, shared.ErrUnauthenticated
	}
	if u.ID == "" {
		return nil, shared.ErrUnauthenticated
	}

	return &identity.User{ID: u.ID, Email: u.Email}, nil
}

// SignInWithPassword performs the password grant against the provider and
// returns the user plus session tokens.
func (p *ProviderClient) SignInWithPassword(ctx context.Context, email, password string) (*identity.User, *identity.Session, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, nil, shared.NewDependencyError("identity provider", err)
	}

	url := p.baseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, nil, shared.NewDependencyError("identity provider", err)
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, nil, shared.NewDependencyError("identity provider", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var perr providerError
		if json.Unmarshal(raw, &perr) == nil && perr.text() != "" {
			return nil, nil, shared.NewDomainError(shared.CodeUnauthenticated, perr.text())
		}
		return nil, nil, shared.NewDomainError(shared.CodeUnauthenticated,
			fmt.Sprintf("login rejected with status %d", resp.StatusCode))
	}

	var sess providerSession
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, nil, shared.NewDependencyError("identity provider", err)
	}

	user := &identity.User{ID: sess.User.ID, Email: sess.User.Email}
	session := &identity.Session{
		AccessToken:  sess.AccessToken,
		TokenType:    sess.TokenType,
		ExpiresIn:    sess.ExpiresIn,
		RefreshToken: sess.RefreshToken,
	}
	return user, session, nil
}
