package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/tracing"
	"github.com/diwise/alarmer/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

type AlarmerClient interface {
	Trigger(ctx context.Context, alarmID string, level int) error
	GetLog(ctx context.Context, alarmID string, limit int) ([]types.LogEntry, error)
}

type alarmerClient struct {
	url        string
	httpClient *http.Client
}

var tracer = otel.Tracer("alarmer-client")

// New returns a client for the alarmer api at alarmerURL. When a token url is
// given, requests are authorized using the oauth2 client credentials flow.
func New(ctx context.Context, alarmerURL, oauthTokenURL, oauthClientID, oauthClientSecret string) (AlarmerClient, error) {
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	if oauthTokenURL != "" {
		oauthConfig := &clientcredentials.Config{
			ClientID:     oauthClientID,
			ClientSecret: oauthClientSecret,
			TokenURL:     oauthTokenURL,
		}

		ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)

		token, err := oauthConfig.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get client credentials from %s: %w", oauthTokenURL, err)
		}

		if !token.Valid() {
			return nil, fmt.Errorf("an invalid token was returned from %s", oauthTokenURL)
		}

		httpClient = oauthConfig.Client(ctx)
	}

	return &alarmerClient{
		url:        strings.TrimSuffix(alarmerURL, "/"),
		httpClient: httpClient,
	}, nil
}

func (c *alarmerClient) Trigger(ctx context.Context, alarmID string, level int) error {
	var err error
	ctx, span := tracer.Start(ctx, "trigger-alarm")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	log := logging.GetLoggerFromContext(ctx)
	log.Debug().Msgf("triggering alarm %s at level %d", alarmID, level)

	params := url.Values{}
	params.Add("id", alarmID)
	params.Add("level", strconv.Itoa(level))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/api/v0/alarms/trigger?"+params.Encode(), nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to trigger alarm: %w", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		err = responseError(resp)
		return err
	}

	return nil
}

func (c *alarmerClient) GetLog(ctx context.Context, alarmID string, limit int) ([]types.LogEntry, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-log")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	params := url.Values{}
	if alarmID != "" {
		params.Add("id", alarmID)
	}
	if limit > 0 {
		params.Add("limit", strconv.Itoa(limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+"/api/v0/log?"+params.Encode(), nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return nil, err
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve log: %w", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = responseError(resp)
		return nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return nil, err
	}

	result := struct {
		Data []types.LogEntry `json:"data"`
	}{}

	err = json.Unmarshal(respBody, &result)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return nil, err
	}

	return result.Data, nil
}

// Error is returned when the api responds with an error
type Error struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("request failed with status code %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status code %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

func responseError(resp *http.Response) error {
	e := &Error{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err == nil {
		errResp := types.ErrorResponse{}
		if json.Unmarshal(body, &errResp) == nil {
			e.Code, e.Message = errResp.Code, errResp.Message
		}
	}

	return e
}
