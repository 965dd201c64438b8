package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybook/internal/api"
	"github.com/teemow/daybook/internal/instrumentation"
	"github.com/teemow/daybook/internal/server"
	"github.com/teemow/daybook/internal/tools/event_tools"
	"github.com/teemow/daybook/internal/tools/note_tools"
	"github.com/teemow/daybook/internal/tools/reminder_tools"
	"github.com/teemow/daybook/internal/tools/todo_tools"
)

// MetricsConfig holds configuration for the metrics server
type MetricsConfig struct {
	// Enabled determines whether to start the metrics server
	Enabled bool

	// Addr is the address for the metrics server (e.g., ":9090")
	Addr string
}

func newServeCmd() *cobra.Command {
	var (
		debugMode      bool
		yolo           bool
		metricsEnabled bool
		metricsAddr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol (MCP) server to expose todos, notes,
events and reminders as tools for AI assistants over stdio.

Safety Mode:
  By default, the server operates in read-only mode, providing only the
  list tools. Use --yolo to enable write operations (create, update,
  delete, toggle).

Authentication:
  The server reuses the session token persisted by "daybook login".
  Run login first; without a token every tool call is rejected by the
  backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			metricsConfig := MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			}
			return runServe(debugMode, yolo, metricsConfig)
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&yolo, "yolo", false, "Enable write operations (create, update, delete). Default is read-only mode.")
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", false, "Serve Prometheus metrics on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(debugMode, yolo bool, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Stdout carries the MCP protocol, so all logging goes to stderr.
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled && os.Getenv("METRICS_ENABLED") == "true" {
		metricsConfig.Enabled = true
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			slog.Error("instrumentation shutdown failed", "error", err)
		}
	}()

	// Start metrics server if enabled
	var metricsServer *server.MetricsServer
	if metricsConfig.Enabled && provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				slog.Error("metrics server failed", "error", err)
			}
		}()
	}

	// Build the session store and API client; request metrics are
	// recorded when instrumentation is enabled.
	var clientOpts []api.Option
	if provider.Enabled() {
		clientOpts = append(clientOpts, api.WithRecorder(provider.Metrics()))
	}
	store, client, err := newBackend(clientOpts...)
	if err != nil {
		return err
	}
	if !store.HasToken() {
		slog.Warn("no session token found; run \"daybook login\" first",
			"path", store.Path())
	}

	serverContext, err := server.NewServerContext(shutdownCtx, store, client)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("metrics server shutdown failed", "error", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			slog.Error("server context shutdown failed", "error", err)
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("daybook", version,
		mcpserver.WithToolCapabilities(true),
	)

	// readOnly is the inverse of yolo
	readOnly := !yolo
	if readOnly {
		slog.Info("starting server in read-only mode (use --yolo to enable write operations)")
	} else {
		slog.Info("starting server with write operations enabled")
	}

	// Register all tools
	if err := registerAllTools(mcpSrv, serverContext, readOnly); err != nil {
		return err
	}

	return runStdioServer(mcpSrv)
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// registerAllTools registers all MCP tools
// Shared by serve and generate-docs
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext, readOnly bool) error {
	// Define all tool registrations
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Todos",
			register: func() error {
				return todo_tools.RegisterTodoTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Notes",
			register: func() error {
				return note_tools.RegisterNoteTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Events",
			register: func() error {
				return event_tools.RegisterEventTools(mcpSrv, ctx, readOnly)
			},
		},
		{
			name: "Reminders",
			register: func() error {
				return reminder_tools.RegisterReminderTools(mcpSrv, ctx, readOnly)
			},
		},
	}

	// Register all tools
	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}
