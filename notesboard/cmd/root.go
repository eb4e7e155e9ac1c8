// Command-line client for the notes API
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"notesboard/notesboard/client/notesapi"
	"notesboard/notesboard/utils/color"
	"notesboard/notesboard/utils/logging"
)

var (
	apiURL  string
	timeout time.Duration
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "notesboard",
	Short: "Campus Notes Board client",
	Long: `notesboard talks to the Campus Notes API.
Run "notesboard connect" for the interactive board, or use the one-shot
list, add and delete commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.InitConsoleLogger(verbose)
		if noColor {
			color.Disable()
		}
	},
}

func newClient() *notesapi.Client {
	return notesapi.New(apiURL, notesapi.WithTimeout(timeout))
}

func defaultAPIURL() string {
	if v := os.Getenv("NOTES_API_URL"); v != "" {
		return v
	}
	return notesapi.DefaultBaseURL
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "base URL of the notes API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", notesapi.DefaultTimeout, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	rootCmd.AddCommand(connectCmd, listCmd, addCmd, deleteCmd)
}

func main() {
	defer logging.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.ColorError(err.Error()))
		os.Exit(1)
	}
}
