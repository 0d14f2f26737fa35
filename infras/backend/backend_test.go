package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"salon/config"
	"salon/infras/backend"
	"salon/infras/otel/mocks"
	"salon/infras/token"
	"salon/shared/failure"
	"salon/shared/session"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stylistPayload struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func newClient(t *testing.T, baseURL string, withToken bool) backend.Client {
	t.Helper()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	cfg.Session.FilePath = filepath.Join(t.TempDir(), "session.json")

	sess, err := session.New(cfg)
	assert.NoError(t, err)

	if withToken {
		assert.NoError(t, sess.SetToken("opaque-token", "customer"))
	}

	return backend.New(cfg, sess, token.New(), mocks.NewOtel())
}

func TestClient_Get_DecodesSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stylist", r.URL.Path)
		assert.Equal(t, "Bearer opaque-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"s1","name":"Maya"}]`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL+"/api", true)

	var stylists []stylistPayload
	err := client.Get(context.Background(), "stylist", nil, &stylists, true)

	assert.NoError(t, err)
	assert.Len(t, stylists, 1)
	assert.Equal(t, "s1", stylists[0].ID)
}

func TestClient_Get_QueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Monday", r.URL.Query().Get("day"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slots":[]}`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL+"/api", true)

	query := url.Values{}
	query.Set("day", "Monday")

	var res struct {
		Slots []any `json:"slots"`
	}
	err := client.Get(context.Background(), "timeSlot/getTime", query, &res, true)

	assert.NoError(t, err)
	assert.Empty(t, res.Slots)
}

func TestClient_AuthedWithoutToken_NoRequestSent(t *testing.T) {
	requests := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	client := newClient(t, srv.URL+"/api", false)

	err := client.Get(context.Background(), "stylist", nil, &[]stylistPayload{}, true)

	assert.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	assert.Equal(t, 0, requests, "no request may be issued without a token")
}

func TestClient_ErrorStatus_CarriesBackendMessage(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantErrMsg string
	}{
		{
			name:       "error shape",
			status:     http.StatusBadRequest,
			body:       `{"error":"invalid day"}`,
			wantErrMsg: "invalid day",
		},
		{
			name:       "message shape",
			status:     http.StatusConflict,
			body:       `{"message":"slot already booked"}`,
			wantErrMsg: "slot already booked",
		},
		{
			name:       "undecodable body falls back to status text",
			status:     http.StatusInternalServerError,
			body:       `<html>boom</html>`,
			wantErrMsg: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := newClient(t, srv.URL+"/api", true)

			err := client.Post(context.Background(), "bookings/check", map[string]string{}, nil, true)

			assert.Error(t, err)
			assert.Equal(t, tt.status, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErrMsg)
		})
	}
}

func TestClient_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slots":`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL+"/api", true)

	var res struct {
		Slots []any `json:"slots"`
	}
	err := client.Get(context.Background(), "timeSlot/getTime", nil, &res, true)

	assert.Error(t, err)
	assert.True(t, failure.IsMalformedResponse(err))
}

func TestClient_Post_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, readJSON(r, &body))
		assert.Equal(t, "2024-06-10", body["date"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"available":true}`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL+"/api", true)

	var res struct {
		Available bool `json:"available"`
	}
	err := client.Post(context.Background(), "bookings/check", map[string]string{"date": "2024-06-10"}, &res, true)

	assert.NoError(t, err)
	assert.True(t, res.Available)
}

func TestClient_UnauthedCall_SkipsBearer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"t","role":"customer"}`))
	}))
	defer srv.Close()

	client := newClient(t, srv.URL+"/api", false)

	var res struct {
		Token string `json:"token"`
	}
	err := client.Post(context.Background(), "auth/login", map[string]string{"email": "a@b.c", "password": "x"}, &res, false)

	assert.NoError(t, err)
	assert.Equal(t, "t", res.Token)
}

func readJSON(r *http.Request, out any) error {
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(out)
}
