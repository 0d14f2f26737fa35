package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/token"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/session"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Client is the typed HTTP core every repository talks to the backend through.
// Authenticated calls read the bearer token from the session store and fail
// with an unauthorized error before any request is sent when it is absent or
// expired. Responses are decoded at this boundary; an undecodable success
// body surfaces as a malformed-response failure, a non-2xx status as a
// failure carrying the backend's code and message. No call is ever retried.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any, authed bool) error
	Post(ctx context.Context, path string, body, out any, authed bool) error
	Put(ctx context.Context, path string, body, out any, authed bool) error
	Patch(ctx context.Context, path string, body, out any, authed bool) error
	Delete(ctx context.Context, path string, out any, authed bool) error
}

type clientImpl struct {
	cfg       *config.Config
	http      *http.Client
	sess      session.Store
	inspector token.Inspector
	otel      otel.Otel
}

func New(cfg *config.Config, sess session.Store, inspector token.Inspector, o otel.Otel) Client {
	return &clientImpl{
		cfg: cfg,
		http: &http.Client{
			Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
		},
		sess:      sess,
		inspector: inspector,
		otel:      o,
	}
}

func (c *clientImpl) Get(ctx context.Context, path string, query url.Values, out any, authed bool) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, authed)
}

func (c *clientImpl) Post(ctx context.Context, path string, body, out any, authed bool) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, authed)
}

func (c *clientImpl) Put(ctx context.Context, path string, body, out any, authed bool) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, authed)
}

func (c *clientImpl) Patch(ctx context.Context, path string, body, out any, authed bool) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, authed)
}

func (c *clientImpl) Delete(ctx context.Context, path string, out any, authed bool) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out, authed)
}

func (c *clientImpl) do(ctx context.Context, method, path string, query url.Values, body, out any, authed bool) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+"."+method+" "+path)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var bearer string

	if authed {
		bearer = c.sess.Token()
		if bearer == constant.Empty {
			return failure.Unauthorized(constant.MsgNotAuthenticated) // nolint:wrapcheck
		}

		if c.inspector.Expired(bearer) {
			return failure.Unauthorized("Session expired. Please login again.") // nolint:wrapcheck
		}
	}

	endpoint := strings.TrimRight(c.cfg.Backend.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parsing endpoint %s: %w", endpoint, err)
	}

	if query != nil {
		parsed.RawQuery = query.Encode()
	}

	var reqBody io.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, parsed.String(), reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderRequestID, requestID)

	if authed {
		req.Header.Set(constant.RequestHeaderAuthorization, constant.AuthSchemeBearer+bearer)
	}

	scope.SetAttributes(map[string]any{
		"http.method":     method,
		"http.url":        parsed.String(),
		"http.request_id": requestID,
	})

	res, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")

		return fmt.Errorf("calling backend: %w", err)
	}
	defer res.Body.Close()

	scope.SetAttribute("http.status_code", res.StatusCode)

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return c.decodeError(res, method, path)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)

		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("failed to decode backend response")

		return failure.MalformedResponse(err) // nolint:wrapcheck
	}

	return nil
}

// errorBody covers the two error shapes the backend uses: {"error": "..."}
// and {"message": "..."}.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *clientImpl) decodeError(res *http.Response, method, path string) error {
	var body errorBody

	msg := constant.Empty
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil {
		if body.Error != constant.Empty {
			msg = body.Error
		} else {
			msg = body.Message
		}
	}

	log.Error().
		Int("status", res.StatusCode).
		Str("method", method).
		Str("path", path).
		Str("message", msg).
		Msg("backend returned an error status")

	return failure.FromStatus(res.StatusCode, msg) // nolint:wrapcheck
}
