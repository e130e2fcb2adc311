package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/spendwise/spendwise-client/internal/config"
	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/internal/utils"
	"github.com/spendwise/spendwise-client/models"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout. Every outbound request carries an
// X-Request-ID header for log correlation on the server side: the ID stored
// in the request context when present, a freshly generated one otherwise.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	uuidGen := utils.NewUUIDGenerator()
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		requestID, ok := utils.GetRequestIDFromContext(req.Context())
		if !ok {
			requestID = uuidGen.Generate()
		}
		req.SetHeader("X-Request-ID", requestID)
		return nil
	})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/users/login/ and returns the token from the response body. A 200
// response without a token field is mapped to [ErrServer]: a token must never
// be considered issued unless the server actually returned one.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&result).
		Post("/api/users/login/")
	if err != nil {
		return "", fmt.Errorf("%w: login request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if result.Token.IsEmpty() {
		return "", fmt.Errorf("%w: login response missing token", ErrServer)
	}

	h.logger.Debug().Str("username", creds.Username).Msg("login accepted by server")
	return result.Token, nil
}

// Register implements [ServerAdapter]. It POSTs the sign-up fields to
// POST /api/users/register/. The server signals success with exactly
// HTTP 201; any other 2xx status is treated as [ErrServer].
func (h *httpServerAdapter) Register(ctx context.Context, reg models.Registration) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reg).
		Post("/api/users/register/")
	if err != nil {
		return fmt.Errorf("%w: register request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if resp.StatusCode() != 201 {
		return fmt.Errorf("%w: unexpected register status %d", ErrServer, resp.StatusCode())
	}

	h.logger.Debug().Str("username", reg.Username).Msg("registration accepted by server")
	return nil
}

// GetExpenses implements [ServerAdapter]. It GETs /api/users/expenses/ with
// token as the bearer credential and decodes the response into the expense
// slice, preserving server order. An empty token fails fast with
// [ErrUnauthorized] before any request leaves the client.
func (h *httpServerAdapter) GetExpenses(ctx context.Context, token models.Token) ([]models.Expense, error) {
	if token.IsEmpty() {
		return nil, ErrUnauthorized
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+string(token)).
		Get("/api/users/expenses/")
	if err != nil {
		return nil, fmt.Errorf("%w: expenses request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Expense
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("%w: decode expenses response: %v", ErrServer, err)
	}

	return items, nil
}
