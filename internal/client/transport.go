package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	genjiErrors "github.com/harunnryd/genji/internal/errors"
)

// Transport posts one JSON request body and returns the response status
// and body, or a transport-level error.
type Transport interface {
	Post(ctx context.Context, body []byte) (int, []byte, error)
}

// HTTPTransport posts to a fixed chat-completions URL with bearer auth.
type HTTPTransport struct {
	client *http.Client
	url    string
	apiKey string
}

func NewHTTPTransport(baseURL, path, apiKey string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{Timeout: timeout},
		url:    strings.TrimSuffix(baseURL, "/") + path,
		apiKey: apiKey,
	}
}

func (t *HTTPTransport) Post(ctx context.Context, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, genjiErrors.Transport(err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, nil, genjiErrors.Transport(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, genjiErrors.Transport(err)
	}

	return resp.StatusCode, respBody, nil
}
