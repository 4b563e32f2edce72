package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 60 * time.Second

// Client talks to the explanation service: one POST per Complete call,
// no retries, no caching. Retry policy, if any, belongs to the caller.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

func NewClientWithHTTP(endpoint string, httpClient *http.Client) *Client {
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

type request struct {
	Message string `json:"message"`
}

type response struct {
	Response *string `json:"response"`
}

// Complete sends prompt to the service and returns the generated text,
// trimmed of surrounding whitespace. Failures come back as *Error with a
// distinguishable kind; an empty success is never fabricated.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", errors.New("empty prompt")
	}

	body, err := json.Marshal(request{Message: prompt})
	if err != nil {
		return "", errors.Wrap(err, "encode completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "build completion request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Kind: KindNetwork, cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", &Error{Kind: KindService, StatusCode: resp.StatusCode}
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &Error{Kind: KindMalformed, cause: err}
	}
	if out.Response == nil {
		return "", &Error{Kind: KindMalformed, cause: errors.New("response field missing")}
	}
	return strings.TrimSpace(*out.Response), nil
}
