package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

//go:generate moq -rm -out controller_mock.go . Client

// Client talks to the automation controller that owns the monitored values
// and rules backing each alarm.
type Client interface {
	State(ctx context.Context, oid string) (State, error)
	Set(ctx context.Context, oid string, value int) error
	Clear(ctx context.Context, oid string) error
	Exists(ctx context.Context, oid string) (bool, error)
	Manage(ctx context.Context, fn string, params map[string]any) (Result, error)
	Reload(ctx context.Context) error
}

type Config struct {
	URL          string
	Target       string
	TokenURL     string
	ClientID     string
	ClientSecret string
	APIKey       string
	Timeout      time.Duration
}

type client struct {
	url        string
	target     string
	apiKey     string
	httpClient *http.Client
}

var tracer = otel.Tracer("alarmer/controller")

var ErrUnexpectedResponse = errors.New("unexpected response from controller")

func New(ctx context.Context, cfg Config) (Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("controller url must not be empty")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   timeout,
	}

	if cfg.TokenURL != "" {
		oauthConfig := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}

		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		token, err := oauthConfig.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get client credentials from %s: %w", cfg.TokenURL, err)
		}

		if !token.Valid() {
			return nil, fmt.Errorf("an invalid token was returned from %s", cfg.TokenURL)
		}

		httpClient = oauthConfig.Client(ctx)
		httpClient.Timeout = timeout
	}

	return &client{
		url:        strings.TrimSuffix(cfg.URL, "/"),
		target:     cfg.Target,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

func (c *client) State(ctx context.Context, oid string) (State, error) {
	state := State{}

	result, err := c.call(ctx, "state", map[string]any{"i": oid, "full": true})
	if err != nil {
		return state, err
	}

	if !result.OK() {
		return state, &ResultError{Func: "state", Target: oid, Code: result.Code}
	}

	if err = result.Decode(&state); err != nil {
		return state, fmt.Errorf("%w: %s", ErrUnexpectedResponse, err.Error())
	}

	if state.OID == "" {
		state.OID = oid
	}

	return state, nil
}

func (c *client) Exists(ctx context.Context, oid string) (bool, error) {
	result, err := c.call(ctx, "state", map[string]any{"i": oid})
	if err != nil {
		return false, err
	}

	switch result.Code {
	case ResultOK:
		return true, nil
	case ResultNotFound:
		return false, nil
	default:
		return false, &ResultError{Func: "state", Target: oid, Code: result.Code}
	}
}

func (c *client) Set(ctx context.Context, oid string, value int) error {
	return c.expectOK(ctx, "set", map[string]any{"i": oid, "v": value})
}

func (c *client) Clear(ctx context.Context, oid string) error {
	return c.expectOK(ctx, "clear", map[string]any{"i": oid})
}

// Manage runs a management function on the configured controller target.
// A non success code is not an error, callers inspect Result.Code.
func (c *client) Manage(ctx context.Context, fn string, params map[string]any) (Result, error) {
	return c.call(ctx, "management_api_call", map[string]any{
		"i": c.target,
		"f": fn,
		"p": params,
	})
}

func (c *client) Reload(ctx context.Context) error {
	return c.expectOK(ctx, "reload_controller", map[string]any{"i": c.target})
}

func (c *client) expectOK(ctx context.Context, fn string, params map[string]any) error {
	result, err := c.call(ctx, fn, params)
	if err != nil {
		return err
	}

	if !result.OK() {
		target, _ := params["i"].(string)
		return &ResultError{Func: fn, Target: target, Code: result.Code}
	}

	return nil
}

func (c *client) call(ctx context.Context, fn string, params map[string]any) (Result, error) {
	var err error
	ctx, span := tracer.Start(ctx, "controller-"+fn)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	span.SetAttributes(attribute.String("controller.func", fn))

	log := logging.GetLoggerFromContext(ctx)

	result := Result{Code: ResultUnknownError}

	body, err := json.Marshal(params)
	if err != nil {
		err = fmt.Errorf("failed to marshal parameters for %s: %w", fn, err)
		return result, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/"+fn, bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return result, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Auth-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("controller call %s failed: %w", fn, err)
		return result, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return result, err
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		err = fmt.Errorf("%w: status code %d from %s", ErrUnexpectedResponse, resp.StatusCode, fn)
		return result, err
	}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrUnexpectedResponse, err.Error())
		return result, err
	}

	span.SetAttributes(attribute.Int("controller.code", result.Code))
	log.Debug().Str("func", fn).Int("code", result.Code).Msg("controller call completed")

	return result, nil
}
