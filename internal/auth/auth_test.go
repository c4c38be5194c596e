package auth

import (
	"testing"

	"github.com/go2web/go2web/internal/config"
	ast "github.com/go2web/go2web/internal/testing"
)

func TestHeaderNone(t *testing.T) {
	cfg := config.DefaultConfig()

	value, ok, err := NewAuthenticator(cfg).Header()
	ast.MustNotFail(t, err)
	ast.Assert(t, ok).IsFalse()
	ast.Assert(t, value).IsEmpty()
}

func TestHeaderBasic(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AuthType = config.AuthBasic
	cfg.Username = "user"
	cfg.Password = "pass"

	value, ok, err := NewAuthenticator(cfg).Header()
	ast.MustNotFail(t, err)
	ast.Assert(t, ok).IsTrue()
	// base64("user:pass")
	ast.Assert(t, value).Equals("Basic dXNlcjpwYXNz")
}

func TestHeaderBasicRequiresUsername(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AuthType = config.AuthBasic

	_, _, err := NewAuthenticator(cfg).Header()
	ast.MustFail(t, err)
}

func TestHeaderBearer(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AuthType = config.AuthBearer
	cfg.Token = "secret-token"

	value, ok, err := NewAuthenticator(cfg).Header()
	ast.MustNotFail(t, err)
	ast.Assert(t, ok).IsTrue()
	ast.Assert(t, value).Equals("Bearer secret-token")
}

func TestHeaderBearerRequiresToken(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AuthType = config.AuthBearer

	_, _, err := NewAuthenticator(cfg).Header()
	ast.MustFail(t, err)
}

func TestApply(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AuthType = config.AuthBearer
	cfg.Token = "abc"

	headers := map[string]string{"Accept": "text/html"}
	ast.MustNotFail(t, NewAuthenticator(cfg).Apply(headers))

	ast.AssertMap(t, headers).HasValue("Authorization", "Bearer abc")
	ast.AssertMap(t, headers).HasValue("Accept", "text/html")
}

func TestApplyLeavesHeadersAloneWithoutAuth(t *testing.T) {
	headers := map[string]string{}
	ast.MustNotFail(t, NewAuthenticator(config.DefaultConfig()).Apply(headers))
	ast.Assert(t, len(headers)).Equals(0)
}
