package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bookstore",
	Short: "personal bookmark organizer",
	Example: `bookstore add -u https://example.com -t "Example" -f "Dev/Go" -g go,web
bookstore search -q "tag(go) sort(title, desc)"
bookstore delete -b <bookmark-id>
bookstore archive set -b <bookmark-id> -f page.html
bookstore stats
bookstore sweep`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
