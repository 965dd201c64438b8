package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the daybook application
var rootCmd = &cobra.Command{
	Use:   "daybook",
	Short: "Manage todos, notes, events and reminders from the terminal",
	Long: `daybook is a client for the daybook backend. It manages your todos,
notes, calendar events and reminders.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// Backend selection, shared by every command that talks to the API.
var (
	flagTarget  string
	flagBaseURL string
)

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "daybook version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTarget, "target", "",
		"Deployment target: simulator, emulator or production. Can also use DAYBOOK_TARGET env var.")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "",
		"Backend origin, overriding --target (e.g. http://localhost:3000). Can also use DAYBOOK_BASE_URL env var.")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newTodosCmd())
	rootCmd.AddCommand(newNotesCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newRemindersCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
