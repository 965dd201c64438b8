package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/auth"
	"github.com/teemow/daybook/internal/instrumentation"
)

// newAuthGateway builds the auth gateway with request and auth-attempt
// metrics attached when instrumentation is enabled. The returned
// cleanup flushes the exporters.
func newAuthGateway(ctx context.Context) (*auth.Gateway, func(), error) {
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(ctx, instrConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	cleanup := func() { _ = provider.Shutdown(ctx) }

	var clientOpts []api.Option
	var gatewayOpts []auth.Option
	if provider.Enabled() {
		clientOpts = append(clientOpts, api.WithRecorder(provider.Metrics()))
		gatewayOpts = append(gatewayOpts, auth.WithRecorder(provider.Metrics()))
	}

	store, client, err := newBackend(clientOpts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return auth.NewGateway(client, store, gatewayOpts...), cleanup, nil
}

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the daybook backend",
		Long: `Exchange email and password for a session token. The token is
persisted in the user cache directory and attached to every
subsequent request until logout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, cleanup, err := newAuthGateway(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := gateway.Login(cmd.Context(), email, password)
			if err != nil {
				return describeAuthError("login", err)
			}

			fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newRegisterCmd() *cobra.Command {
	var (
		name     string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a daybook account",
		Long: `Create a new account on the daybook backend. On success the issued
session token is persisted, so no separate login is needed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, cleanup, err := newAuthGateway(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := gateway.Register(cmd.Context(), name, email, password)
			if err != nil {
				return describeAuthError("registration", err)
			}

			fmt.Printf("Account created for %s <%s>\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name for the new account")
	cmd.Flags().StringVar(&email, "email", "", "Account email address")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the persisted session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, client, err := newBackend()
			if err != nil {
				return err
			}

			if err := auth.NewGateway(client, store).Logout(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}

			fmt.Println("Logged out")
			return nil
		},
	}
}

// describeAuthError turns the typed auth failure into a message that
// distinguishes a backend rejection from a connectivity problem.
func describeAuthError(operation string, err error) error {
	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return fmt.Errorf("%s rejected: %s", operation, authErr.Message)
	}
	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return fmt.Errorf("%s failed: backend unreachable: %w", operation, err)
	}
	return fmt.Errorf("%s failed: %w", operation, err)
}
