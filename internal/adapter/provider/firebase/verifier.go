// Package firebase verifies Firebase Authentication ID tokens.
package firebase

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/config"
	"github.com/ved-2004/Bias-Removal-Prompt-Game/internal/domain"
)

const (
	issuerPrefix    = "https://securetoken.google.com/"
	maxSubjectLen   = 128
	defaultCertsTTL = time.Hour
	clockLeeway     = 5 * time.Second
	// minRefetch bounds how often an unknown kid can force a refetch.
	minRefetch = time.Minute
)

// Verifier checks RS256 ID tokens against Google's published signing
// certificates. Certificates are cached for the max-age the endpoint
// advertises and refetched when an unknown key id shows up.
type Verifier struct {
	projectID  string
	issuer     string
	certsURL   string
	httpClient *http.Client
	log        *slog.Logger

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expires   time.Time
	fetchedAt time.Time
	now       func() time.Time
}

// NewVerifier creates a Verifier for the configured Firebase project.
func NewVerifier(cfg config.AuthConfig, logger *slog.Logger) *Verifier {
	return &Verifier{
		projectID:  cfg.FirebaseProjectID,
		issuer:     issuerPrefix + cfg.FirebaseProjectID,
		certsURL:   cfg.CertsURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "firebase"),
		now:        time.Now,
	}
}

type idTokenClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// ValidateToken returns the identity carried by a valid ID token.
// Invalid, expired or foreign tokens yield domain.ErrUnauthorized. Failure to
// obtain signing keys yields domain.ErrProviderUnavailable.
func (v *Verifier) ValidateToken(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, fmt.Errorf("firebase: empty token: %w", domain.ErrUnauthorized)
	}

	var keyErr error
	claims := &idTokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) {
			kid, _ := t.Header["kid"].(string)
			key, err := v.key(ctx, kid)
			if err != nil {
				keyErr = err
			}
			return key, err
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockLeeway),
		jwt.WithTimeFunc(v.now),
	)
	if errors.Is(keyErr, domain.ErrProviderUnavailable) {
		return domain.Identity{}, keyErr
	}
	if err != nil || !parsed.Valid {
		v.log.DebugContext(ctx, "id token rejected", slog.Any("error", err))
		return domain.Identity{}, fmt.Errorf("firebase: %w: %v", domain.ErrUnauthorized, err)
	}

	if claims.Subject == "" || len(claims.Subject) > maxSubjectLen {
		return domain.Identity{}, fmt.Errorf("firebase: invalid subject: %w", domain.ErrUnauthorized)
	}

	return domain.Identity{
		UID:     claims.Subject,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}, nil
}

// key returns the public key for kid, refreshing the certificate set when it
// has expired or does not contain kid.
func (v *Verifier) key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if kid == "" {
		return nil, errors.New("missing kid header")
	}

	v.mu.RLock()
	key, ok := v.keys[kid]
	now := v.now()
	fresh := now.Before(v.expires)
	recent := now.Sub(v.fetchedAt) < minRefetch
	v.mu.RUnlock()
	if ok && fresh {
		return key, nil
	}
	if fresh && recent {
		return nil, fmt.Errorf("unknown kid %q", kid)
	}

	if err := v.refresh(ctx); err != nil {
		return nil, err
	}

	v.mu.RLock()
	key, ok = v.keys[kid]
	v.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown kid %q", kid)
	}
	return key, nil
}

func (v *Verifier) refresh(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.certsURL, nil)
	if err != nil {
		return fmt.Errorf("firebase: create certs request: %w", err)
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "firebase certs fetch failed", slog.String("error", err.Error()))
		return fmt.Errorf("firebase: fetch certs: %w: %v", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "firebase certs fetch failed", slog.Int("status", resp.StatusCode))
		return fmt.Errorf("firebase: certs status %d: %w", resp.StatusCode, domain.ErrProviderUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("firebase: read certs: %w: %v", domain.ErrProviderUnavailable, err)
	}

	keys, err := parseCerts(body)
	if err != nil {
		return fmt.Errorf("firebase: %w: %v", domain.ErrProviderUnavailable, err)
	}

	v.keys = keys
	v.fetchedAt = v.now()
	v.expires = v.fetchedAt.Add(maxAge(resp.Header.Get("Cache-Control")))

	v.log.DebugContext(ctx, "firebase certs refreshed",
		slog.Int("keys", len(keys)),
		slog.Time("expires", v.expires),
	)
	return nil
}

// parseCerts decodes the {kid: PEM certificate} document.
func parseCerts(body []byte) (map[string]*rsa.PublicKey, error) {
	var raw map[string]string
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("decode certs: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(raw))
	for kid, certPEM := range raw {
		block, _ := pem.Decode([]byte(certPEM))
		if block == nil {
			return nil, fmt.Errorf("cert %q: no PEM block", kid)
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("cert %q: %w", kid, err)
		}
		pub, ok := cert.PublicKey.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("cert %q: not an RSA key", kid)
		}
		keys[kid] = pub
	}
	if len(keys) == 0 {
		return nil, errors.New("no certificates published")
	}
	return keys, nil
}

// maxAge extracts max-age from a Cache-Control header.
func maxAge(header string) time.Duration {
	for _, directive := range strings.Split(header, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(directive), "=")
		if !ok || !strings.EqualFold(name, "max-age") {
			continue
		}
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			break
		}
		return time.Duration(secs) * time.Second
	}
	return defaultCertsTTL
}
