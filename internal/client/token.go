package client

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"coworkctl/internal/lib/api/apierr"
)

// TokenSource supplies the Authorization header value for each request.
// It replaces the ambient token storage of earlier clients: the session is
// an explicit dependency, and expiry is checked before any network call.
type TokenSource interface {
	Token() (string, error)
}

// StaticToken is a fixed token, typically from config or environment.
type StaticToken string

func (t StaticToken) Token() (string, error) {
	return string(t), nil
}

// FileTokenSource reads the token from a file on every call, so an external
// login flow can refresh it without restarting the process.
type FileTokenSource struct {
	Path string
}

func (s FileTokenSource) Token() (string, error) {
	const op = "client.FileTokenSource.Token"

	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return strings.TrimSpace(string(raw)), nil
}

// checkExpiry rejects JWT tokens whose exp claim is in the past. Opaque
// (non-JWT) tokens pass through; the server is the authority for those.
func checkExpiry(token string, now time.Time) error {
	if strings.Count(token, ".") != 2 {
		return nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		// Not a parseable JWT after all. Let the server decide.
		return nil
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}

	if exp.Before(now) {
		return apierr.New(apierr.Transport, "auth token expired")
	}

	return nil
}
