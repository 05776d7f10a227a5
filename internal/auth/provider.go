package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	apperrors "mod-registry-backend/internal/errors"

	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// ProviderConfig holds the identity-provider settings, loadable from
// config/auth.yaml with environment overrides applied by the caller.
type ProviderConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	AuthURL      string   `yaml:"auth_url"`
	TokenURL     string   `yaml:"token_url"`
	UserURL      string   `yaml:"user_url"`
	RedirectURI  string   `yaml:"redirect_uri"`
	Scopes       []string `yaml:"scopes"`
}

// LoadProviderConfig reads the identity-provider configuration file
func LoadProviderConfig(path string) (*ProviderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read auth config: %w", err)
	}

	var config ProviderConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse auth config: %w", err)
	}
	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, fmt.Errorf("auth config is missing client credentials")
	}

	return &config, nil
}

// UserProfile is the identity returned by the provider
type UserProfile struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProviderClient exchanges OAuth codes and fetches user identities. It is
// thin glue around the provider; the registry core only ever consumes the
// resulting (user id, email) pair.
type ProviderClient struct {
	config      *ProviderConfig
	oauthConfig *oauth2.Config
}

// NewProviderClient creates a client for the configured provider
func NewProviderClient(config *ProviderConfig) *ProviderClient {
	return &ProviderClient{
		config: config,
		oauthConfig: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURI,
			Scopes:       config.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  config.AuthURL,
				TokenURL: config.TokenURL,
			},
		},
	}
}

// AuthCodeURL returns the provider URL to redirect a browser to
func (c *ProviderClient) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state)
}

// Exchange trades an authorization code for the provider's user profile.
// Provider slowness is surfaced as a timeout so the caller can retry.
func (c *ProviderClient) Exchange(ctx context.Context, code string) (*UserProfile, error) {
	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, mapProviderError(err)
	}

	client := c.oauthConfig.Client(ctx, token)
	resp, err := client.Get(c.config.UserURL)
	if err != nil {
		return nil, mapProviderError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewInternal(fmt.Errorf("identity provider returned status %d", resp.StatusCode))
	}

	var profile UserProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, apperrors.NewInternal(fmt.Errorf("decode identity response: %w", err))
	}

	return &profile, nil
}

func mapProviderError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperrors.ErrUpstreamTimeout
	}
	return apperrors.NewInternal(err)
}
