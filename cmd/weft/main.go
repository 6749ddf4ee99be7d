package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦ ╦┌─┐┌─┐┌┬┐
  ║║║├┤ ├┤  │
  ╚╩╝└─┘└   ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "weft",
		Short: "Build and serve sites woven from the weft UI framework",
		Long: `Weft is a tiny UI framework and the tooling for the sites built on it.

  • In-memory virtual DOM with positional diffing
  • Components, observable stores, and a path router
  • Hot reload development server
  • Static export and S3 deploy`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "weft.json", "path to the project config file")

	rootCmd.AddCommand(
		serveCmd(),
		buildCmd(),
		deployCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the weft ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
