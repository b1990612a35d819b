package ehrclient

import (
	"bytes"
	"context"
	"ehr-portal-service/internal/pkg/constvars"
	"ehr-portal-service/internal/pkg/dto/responses"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultStaleAfter        = 30 * time.Second
	defaultRevalidateTimeout = 30 * time.Second
	apiPrefix                = "/api"
)

type Config struct {
	// BaseURL is the origin of the portal service, e.g. http://localhost:8080.
	BaseURL string
	// HTTPClient should carry a cookie jar so the session and vendor
	// credential cookies travel with every call.
	HTTPClient *http.Client
	StaleAfter time.Duration
	Log        *zap.Logger
}

// Client reads portal resources through a stale-while-revalidate cache and
// invalidates the affected keys after every write.
type Client struct {
	baseURL    string
	httpClient *http.Client
	staleAfter time.Duration
	log        *zap.Logger
	now        func() time.Time

	mu      sync.Mutex
	entries map[CacheKey]*entry
	group   singleflight.Group
	pending sync.WaitGroup
}

func New(cfg Config) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: cfg.HTTPClient,
		staleAfter: cfg.StaleAfter,
		log:        cfg.Log,
		now:        time.Now,
		entries:    make(map[CacheKey]*entry),
	}
	if client.httpClient == nil {
		client.httpClient = http.DefaultClient
	}
	if client.staleAfter <= 0 {
		client.staleAfter = defaultStaleAfter
	}
	if client.log == nil {
		client.log = zap.NewNop()
	}
	return client
}

// APIError is a non-2xx answer from the portal service.
type APIError struct {
	StatusCode int
	Message    string
	Details    any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("ehr portal returned %d: %s", e.StatusCode, e.Message)
}

type envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Data       json.RawMessage       `json:"data"`
	Pagination *responses.Pagination `json:"pagination"`
	Error      string                `json:"error"`
	Details    any                   `json:"details"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	endpoint := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	result := new(envelope)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, result); err != nil && resp.StatusCode < 300 {
			return nil, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}

	if resp.StatusCode >= 300 {
		message := result.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: message, Details: result.Details}
	}
	return result, nil
}

func decodeData[T any](result *envelope) (T, error) {
	var data T
	if len(result.Data) == 0 || string(result.Data) == "null" {
		return data, nil
	}
	err := json.Unmarshal(result.Data, &data)
	return data, err
}

func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	result, err := c.do(ctx, method, path, query, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeData[T](result)
}

// Wait blocks until every background revalidation started so far is done.
func (c *Client) Wait() {
	c.pending.Wait()
}
