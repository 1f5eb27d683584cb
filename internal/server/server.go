package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cratedig/internal/shared"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
)

// callbackTimeout bounds how long the flow waits for the user to authorize.
const callbackTimeout = 5 * time.Minute

// Flow runs the three-legged OAuth authorization flow on a local loopback
// listener. The core consumes only the resulting token; it never manages
// network listeners itself.
type Flow struct {
	host        string
	port        int
	logger      *log.Logger
	openBrowser func(url string) error
}

// NewFlow creates a Flow bound to the given loopback address.
func NewFlow(host string, port int, logger *log.Logger) *Flow {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Flow{host: host, port: port, logger: logger, openBrowser: shared.OpenBrowser}
}

// Authorize generates an authorization URL with a fresh anti-forgery state
// token, opens it in the local browser, and waits up to five minutes for
// the callback to deliver an exchanged token.
func (f *Flow) Authorize(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	state := shared.GenerateState()
	handler := NewOAuthHandler(config, state)

	mux := http.NewServeMux()
	mux.Handle("/callback", handler)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", f.host, f.port),
		Handler: mux,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	f.logger.Info("waiting for authorization", "url", authURL)

	if err := f.openBrowser(authURL); err != nil {
		f.logger.Warn("could not open browser, visit the URL manually", "err", err)
	}

	select {
	case result := <-handler.Result():
		if err := result.Error(); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAuthFailed, err)
		}
		return result.Token, nil
	case err := <-serveErr:
		return nil, fmt.Errorf("%w: callback server: %v", shared.ErrAuthFailed, err)
	case <-time.After(callbackTimeout):
		return nil, fmt.Errorf("%w: timed out waiting for authorization", shared.ErrAuthFailed)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
