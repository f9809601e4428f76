package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	domainErrors "github.com/example/shopfront/internal/domain/errors"
	"github.com/example/shopfront/internal/domain/model"
	"github.com/example/shopfront/internal/domain/repository"
)

// RequestFailedError represents a non-2xx answer from the store API,
// carrying the server-reported message when one was present.
type RequestFailedError struct {
	Status  int
	Message string
}

func (e *RequestFailedError) Error() string {
	return e.Message
}

// Client exposes the operations of the remote store API.
type Client interface {
	ListGoods(ctx context.Context, page, perPage int, query string) ([]model.Good, error)
	GetGood(ctx context.Context, id int64) (*model.Good, error)
	Autocomplete(ctx context.Context, query string) ([]string, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	CreateOrder(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error)
	UpdateOrder(ctx context.Context, id int64, payload model.UpdateOrderRequest) (*model.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// HTTPClient implements Client against the HTTP store API. The credential
// is read from the key store on every call and appended as a query
// parameter; an absent credential fails locally before any network I/O.
type HTTPClient struct {
	baseURL    *url.URL
	authParam  string
	keys       repository.KeyStore
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a store API client with the transport timeout as
// the only enforced deadline.
func NewHTTPClient(baseURL, authParam string, keys repository.KeyStore, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse store api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("store api url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		authParam: authParam,
		keys:      keys,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *HTTPClient) ListGoods(ctx context.Context, page, perPage int, query string) ([]model.Good, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("query", query)

	var goods model.GoodsList
	if err := c.do(ctx, http.MethodGet, "/goods", params, nil, &goods); err != nil {
		return nil, err
	}
	return goods, nil
}

func (c *HTTPClient) GetGood(ctx context.Context, id int64) (*model.Good, error) {
	var good model.Good
	if err := c.do(ctx, http.MethodGet, "/goods/"+strconv.FormatInt(id, 10), nil, nil, &good); err != nil {
		return nil, err
	}
	return &good, nil
}

func (c *HTTPClient) Autocomplete(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("query", query)

	var suggestions []string
	if err := c.do(ctx, http.MethodGet, "/autocomplete", params, nil, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *HTTPClient) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodGet, "/orders/"+strconv.FormatInt(id, 10), nil, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) CreateOrder(ctx context.Context, payload model.CreateOrderRequest) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) UpdateOrder(ctx context.Context, id int64, payload model.UpdateOrderRequest) (*model.Order, error) {
	var order model.Order
	if err := c.do(ctx, http.MethodPut, "/orders/"+strconv.FormatInt(id, 10), nil, payload, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HTTPClient) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/orders/"+strconv.FormatInt(id, 10), nil, nil, nil)
}

// errorBody mirrors the optional failure payload of the store API.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do runs one authenticated request. Empty query parameter values are
// dropped, a present body is sent as JSON, and the response body is decoded
// into out on a best-effort basis: an unexpected shape is logged and
// skipped rather than reported as a failure.
func (c *HTTPClient) do(ctx context.Context, method, requestPath string, params url.Values, body, out any) error {
	key := c.keys.Get()
	if key == "" {
		return domainErrors.ErrAPIKeyMissing
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, requestPath)

	values := endpoint.Query()
	values.Set(c.authParam, key)
	for name, vs := range params {
		for _, v := range vs {
			if v != "" {
				values.Set(name, v)
			}
		}
	}
	endpoint.RawQuery = values.Encode()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		message := fmt.Sprintf("request failed (%d)", resp.StatusCode)
		var parsed errorBody
		if json.Unmarshal(data, &parsed) == nil {
			if parsed.Message != "" {
				message = parsed.Message
			} else if parsed.Error != "" {
				message = parsed.Error
			}
		}
		c.logger.Error("store api request failed",
			slog.String("method", method),
			slog.String("path", requestPath),
			slog.Int("status", resp.StatusCode),
		)
		return &RequestFailedError{Status: resp.StatusCode, Message: message}
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.logger.Warn("store api returned unexpected body",
			slog.String("method", method),
			slog.String("path", requestPath),
			slog.String("error", err.Error()),
		)
	}
	return nil
}
