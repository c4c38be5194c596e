package config

import (
	"path/filepath"
	"testing"
	"time"

	ast "github.com/go2web/go2web/internal/testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	ast.Assert(t, cfg.UserAgent).IsNotEmpty()
	ast.Assert(t, cfg.Timeout).Equals(30 * time.Second)
	ast.Assert(t, cfg.MaxRedirects).Equals(5)
	ast.Assert(t, cfg.FollowRedirects).IsTrue()
	ast.Assert(t, cfg.CacheMaxAge).Equals(time.Hour)
	ast.Assert(t, string(cfg.AuthType)).Equals(string(AuthNone))
	ast.MustNotFail(t, cfg.Validate())
}

func TestValidateClampsNegatives(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRedirects = -3
	cfg.Timeout = -time.Second
	cfg.RequestsPerSecond = -1
	cfg.CacheMaxAge = 0

	ast.MustNotFail(t, cfg.Validate())

	ast.Assert(t, cfg.MaxRedirects).Equals(0)
	ast.Assert(t, cfg.Timeout).Equals(time.Duration(0))
	ast.Assert(t, cfg.RequestsPerSecond).Equals(0.0)
	ast.Assert(t, cfg.CacheMaxAge).Equals(time.Hour)
}

func TestValidateFillsEmptyUserAgent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UserAgent = ""

	ast.MustNotFail(t, cfg.Validate())
	ast.Assert(t, cfg.UserAgent).Equals(DefaultConfig().UserAgent)
}

func TestValidateRejectsUnknownAuthType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AuthType = "kerberos"

	ast.MustFail(t, cfg.Validate())
}

func TestSaveAndLoad(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UserAgent = "go2web-test/1.0"
	cfg.Timeout = 12 * time.Second
	cfg.MaxRedirects = 2
	cfg.AuthType = AuthBearer
	cfg.Token = "token-value"

	path := filepath.Join(t.TempDir(), "config.json")
	ast.MustNotFail(t, cfg.Save(path))

	loaded, err := Load(path)
	ast.MustNotFail(t, err)

	ast.Assert(t, loaded.UserAgent).Equals("go2web-test/1.0")
	ast.Assert(t, loaded.Timeout).Equals(12 * time.Second)
	ast.Assert(t, loaded.MaxRedirects).Equals(2)
	ast.Assert(t, string(loaded.AuthType)).Equals(string(AuthBearer))
	ast.Assert(t, loaded.Token).Equals("token-value")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	ast.MustFail(t, err)
}

func TestLoadInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	bad := DefaultConfig()
	bad.AuthType = "bogus"
	// Save skips validation so a broken file can be produced for Load to
	// reject.
	ast.MustNotFail(t, bad.Save(path))

	_, err := Load(path)
	ast.MustFail(t, err)
}
