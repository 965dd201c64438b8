package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/logging"
	"github.com/teemow/daybook/internal/session"
)

// Auth attempt results reported to the recorder.
const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// User is the backend account profile returned by login and register.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// credentialsResponse is the wire shape of both auth endpoints.
type credentialsResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Recorder records authentication attempts. It is implemented by
// instrumentation.Metrics; the indirection keeps this package free of
// the OpenTelemetry dependency.
type Recorder interface {
	RecordAuthAttempt(ctx context.Context, operation, result string)
}

// Gateway exchanges credentials for a session token. It is the only
// component that writes the session store; the dispatcher and the
// resource adapters only read it.
type Gateway struct {
	client   *api.Client
	store    *session.Store
	logger   *slog.Logger
	recorder Recorder
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithRecorder sets the metrics recorder for auth attempt
// instrumentation.
func WithRecorder(r Recorder) Option {
	return func(g *Gateway) {
		g.recorder = r
	}
}

// NewGateway creates an auth gateway over the shared dispatcher and
// session store.
func NewGateway(client *api.Client, store *session.Store, opts ...Option) *Gateway {
	g := &Gateway{
		client: client,
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Login exchanges email and password for a session token and persists
// the token in the session store. A rejection by the backend surfaces
// as *api.AuthError carrying the server-supplied message; the store is
// left unchanged.
func (g *Gateway) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	return g.exchange(ctx, "login", "/auth/login", body)
}

// Register creates a new account and persists the issued token.
// Validation failures and duplicate accounts surface as *api.AuthError.
func (g *Gateway) Register(ctx context.Context, name, email, password string) (*User, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	return g.exchange(ctx, "register", "/auth/register", body)
}

// Logout clears the persisted session token.
func (g *Gateway) Logout() error {
	return g.store.Clear()
}

func (g *Gateway) exchange(ctx context.Context, operation, path string, body map[string]string) (*User, error) {
	var resp credentialsResponse
	if err := g.client.Do(ctx, http.MethodPost, path, body, &resp); err != nil {
		g.record(ctx, operation, resultFailure)
		var resErr *api.ResourceError
		if errors.As(err, &resErr) {
			g.logger.Debug("authentication rejected",
				logging.Operation(operation), logging.Status(logging.StatusError))
			return nil, &api.AuthError{Message: resErr.Message}
		}
		return nil, err
	}

	if resp.Token == "" {
		g.record(ctx, operation, resultFailure)
		return nil, &api.MalformedResponseError{Err: fmt.Errorf("auth response contains no token")}
	}
	if err := g.store.SetToken(resp.Token); err != nil {
		g.record(ctx, operation, resultFailure)
		return nil, fmt.Errorf("failed to persist session token: %w", err)
	}

	g.record(ctx, operation, resultSuccess)
	g.logger.Debug("session established",
		logging.Operation(operation),
		logging.UserHash(resp.User.Email),
		slog.String("token", logging.SanitizeToken(resp.Token)))

	return &resp.User, nil
}

func (g *Gateway) record(ctx context.Context, operation, result string) {
	if g.recorder == nil {
		return
	}
	g.recorder.RecordAuthAttempt(ctx, operation, result)
}
