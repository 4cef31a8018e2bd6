package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"roomview/services/token"
	"roomview/utils"

	"go.uber.org/zap"
)

// NewHTTPClient builds the shared outbound client. Every upstream call
// must complete within the given timeout; a timeout surfaces as a fetch
// failure like any other transport error.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// getJSON performs an authenticated GET against the tenant API and
// returns the raw body. Non-2xx responses are errors carrying the status
// and a truncated body excerpt.
func getJSON(ctx context.Context, client *http.Client, tokens token.TokenProvider, url string) ([]byte, error) {
	bearer, err := tokens.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring token for %s: %w", url, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		utils.GetLogger().Warn("upstream returned non-OK status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("body", utils.TruncateBody(body, 200)))
		return nil, fmt.Errorf("upstream %s returned %d", url, resp.StatusCode)
	}

	return body, nil
}
