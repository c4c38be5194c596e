// Package auth provides authentication headers for outgoing requests.
package auth

import (
	"encoding/base64"
	"fmt"

	"github.com/go2web/go2web/internal/config"
)

// Authenticator produces Authorization header values based on config.
type Authenticator struct {
	config *config.Config
}

// NewAuthenticator creates a new authenticator.
func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{config: cfg}
}

// Header returns the Authorization header value for the configured auth
// type. The second return is false when no authentication is configured.
func (a *Authenticator) Header() (string, bool, error) {
	switch a.config.AuthType {
	case "", config.AuthNone:
		return "", false, nil

	case config.AuthBasic:
		if a.config.Username == "" {
			return "", false, fmt.Errorf("basic auth requires a username")
		}
		credentials := a.config.Username + ":" + a.config.Password
		encoded := base64.StdEncoding.EncodeToString([]byte(credentials))
		return "Basic " + encoded, true, nil

	case config.AuthBearer:
		if a.config.Token == "" {
			return "", false, fmt.Errorf("bearer auth requires a token")
		}
		return "Bearer " + a.config.Token, true, nil

	default:
		return "", false, fmt.Errorf("unknown auth type: %s", a.config.AuthType)
	}
}

// Apply adds the Authorization header to headers when authentication is
// configured.
func (a *Authenticator) Apply(headers map[string]string) error {
	value, ok, err := a.Header()
	if err != nil {
		return err
	}
	if ok {
		headers["Authorization"] = value
	}
	return nil
}
