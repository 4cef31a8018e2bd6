package token

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"roomview/models"
	"roomview/utils"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// tokenEndpoints are the candidate token paths, tried in order. Tenant
// installations differ in which one they expose.
var tokenEndpoints = []string{
	"/oauth/token",
	"/oauth2/token",
	"/api/oauth/token",
}

// expiryMargin is shaved off the advertised token lifetime so a token is
// never presented right at the boundary (clock skew, request latency).
const expiryMargin = 60 * time.Second

// DefaultTokenProvider fetches client-credentials tokens from the tenant
// identity endpoint and caches the latest one until shortly before its
// expiry. The cache is a single slot replaced wholesale; concurrent
// refreshes are wasteful but safe, last writer wins.
type DefaultTokenProvider struct {
	HTTP         *http.Client
	BaseURL      string
	ClientID     string
	ClientSecret string

	cached atomic.Pointer[models.Credential]
}

func NewDefaultTokenProvider(httpClient *http.Client, baseURL, clientID, clientSecret string) *DefaultTokenProvider {
	return &DefaultTokenProvider{
		HTTP:         httpClient,
		BaseURL:      strings.TrimRight(baseURL, "/"),
		ClientID:     clientID,
		ClientSecret: clientSecret,
	}
}

// GetToken returns the cached token when it is still usable, otherwise
// fetches a fresh one. A fetch failure is returned as-is: there is no
// safe default credential.
func (p *DefaultTokenProvider) GetToken(ctx context.Context) (string, error) {
	if cred := p.cached.Load(); cred.Usable(time.Now()) {
		return cred.Token, nil
	}

	cred, err := p.fetch(ctx)
	if err != nil {
		return "", err
	}
	p.cached.Store(cred)
	return cred.Token, nil
}

func (p *DefaultTokenProvider) fetch(ctx context.Context) (*models.Credential, error) {
	logger := utils.GetLogger()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.ClientID)
	form.Set("client_secret", p.ClientSecret)

	var lastErr error
	for _, path := range tokenEndpoints {
		endpoint := p.BaseURL + path

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			lastErr = err
			continue
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := p.HTTP.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("token request to %s failed: %w", endpoint, err)
			logger.Warn("token endpoint unreachable", zap.String("url", endpoint), zap.Error(err))
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = fmt.Errorf("reading token response from %s: %w", endpoint, readErr)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("token endpoint %s returned %d: %s", endpoint, resp.StatusCode, utils.TruncateBody(body, 200))
			logger.Warn("token endpoint rejected request",
				zap.String("url", endpoint),
				zap.Int("status", resp.StatusCode),
				zap.String("body", utils.TruncateBody(body, 200)))
			continue
		}

		accessToken := gjson.GetBytes(body, "access_token").String()
		expiresIn := gjson.GetBytes(body, "expires_in").Int()
		if accessToken == "" || expiresIn <= 0 {
			lastErr = fmt.Errorf("token endpoint %s returned malformed body: %s", endpoint, utils.TruncateBody(body, 200))
			continue
		}

		logger.Debug("obtained access token",
			zap.String("url", endpoint),
			zap.Int64("expiresIn", expiresIn))

		return &models.Credential{
			Token:     accessToken,
			ExpiresAt: time.Now().Add(time.Duration(expiresIn)*time.Second - expiryMargin),
		}, nil
	}

	return nil, fmt.Errorf("all token endpoints failed: %w", lastErr)
}
