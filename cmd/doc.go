// Package cmd implements the command-line interface for daybook.
//
// This package provides the following commands:
//   - login, register, logout: Manage the backend session
//   - todos, notes, events, reminders: CRUD commands for each collection
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// Every command that talks to the backend honors the --target and
// --base-url persistent flags (and their DAYBOOK_TARGET and
// DAYBOOK_BASE_URL environment fallbacks).
package cmd
