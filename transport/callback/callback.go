// Package callback runs a short-lived localhost HTTP listener that receives
// the Google OAuth redirect from the backend. The backend appends the issued
// token and role as query parameters; the listener stores them in the session
// and shuts down.
package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"salon/config"
	"salon/infras/token"
	"salon/shared/constant"
	"salon/shared/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

type result struct {
	role string
	err  error
}

type Listener struct {
	cfg       *config.Config
	sess      session.Store
	inspector token.Inspector
	results   chan result
}

func New(cfg *config.Config, sess session.Store, inspector token.Inspector) *Listener {
	return &Listener{
		cfg:       cfg,
		sess:      sess,
		inspector: inspector,
		results:   make(chan result, 1),
	}
}

// Handler builds the callback router. Split out so tests can drive it without
// binding a port.
func (l *Listener) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get(constant.PathGoogleCallback, l.handleCallback)

	return r
}

func (l *Listener) handleCallback(w http.ResponseWriter, r *http.Request) {
	authToken := r.URL.Query().Get(constant.RequestParamToken)
	if authToken == constant.Empty {
		l.renderPage(w, http.StatusBadRequest, "Sign-in failed", "No token was returned. Close this window and try again.")
		l.deliver(result{err: errors.New("callback received without a token")})

		return
	}

	role := r.URL.Query().Get(constant.RequestParamRole)
	if role == constant.Empty {
		role = l.inspector.Role(authToken)
	}

	if role == constant.Empty {
		role = constant.RoleCustomer
	}

	if err := l.sess.SetToken(authToken, role); err != nil {
		log.Error().Err(err).Msg("failed to store OAuth credentials")
		l.renderPage(w, http.StatusInternalServerError, "Sign-in failed", "Could not store your session. Close this window and try again.")
		l.deliver(result{err: fmt.Errorf("failed to store OAuth credentials: %w", err)})

		return
	}

	l.renderPage(w, http.StatusOK, "Signed in", "You are signed in. You can close this window and return to the terminal.")
	l.deliver(result{role: role})
}

func (l *Listener) renderPage(w http.ResponseWriter, status int, title, body string) {
	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	w.WriteHeader(status)

	fmt.Fprintf(w, "<html><head><title>%s</title></head><body><h1>%s</h1><p>%s</p></body></html>", title, title, body)
}

func (l *Listener) deliver(res result) {
	select {
	case l.results <- res:
	default:
	}
}

// Wait serves the callback endpoint until a redirect lands or the context
// ends, and returns the role stored for the signed-in user.
func (l *Listener) Wait(ctx context.Context) (string, error) {
	addr := net.JoinHostPort(l.cfg.OAuth.CallbackHost, l.cfg.OAuth.CallbackPort)

	server := &http.Server{
		Addr:              addr,
		Handler:           l.Handler(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	log.Info().Str("addr", addr).Msg("waiting for the OAuth redirect")

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	select {
	case res := <-l.results:
		if res.err != nil {
			return constant.Empty, res.err
		}

		return res.role, nil
	case err := <-serveErr:
		return constant.Empty, fmt.Errorf("callback listener failed: %w", err)
	case <-ctx.Done():
		return constant.Empty, ctx.Err() // nolint:wrapcheck
	}
}
