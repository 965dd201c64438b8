// Package server provides the MCP server context and the dedicated
// Prometheus metrics server for the daybook application.
//
// # Key Components
//
// ServerContext bundles the pieces every MCP tool needs: the persisted
// session store, the shared backend client, the auth gateway and one
// editing controller per collection. Tools receive it at registration
// time instead of constructing their own clients.
//
// MetricsServer serves /metrics on a dedicated port so operational
// metrics stay separate from the MCP transport.
package server
