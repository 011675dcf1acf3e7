// Package cli wires the petsync command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/emvolvovsky-bot/PetMatch/internal/catalog"
	"github.com/emvolvovsky-bot/PetMatch/internal/config"
	"github.com/emvolvovsky-bot/PetMatch/internal/distrib"
)

// excerptLen caps how much of an error response body the report shows.
const excerptLen = 200

var (
	// Version info passed from main
	appVersion   string
	appGitCommit string
	appBuildTime string

	// Global flags
	outputPath string
	debug      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "petsync",
	Short: "Download the latest pet catalog CSV from the distributor API",
	Long: `petsync fetches the pet catalog published by the
Petfinder-Database-Distributor API and saves it to a local file.

Configuration comes from PETSYNC_* environment variables, optionally
loaded from a .env file in the working directory. PETSYNC_API_KEY is
required; everything else has documented defaults.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

// Execute sets version info and executes the root command.
func Execute(ver, commit, built string) error {
	appVersion = ver
	appGitCommit = commit
	appBuildTime = built

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Where to save the catalog (overrides PETSYNC_OUTPUT_PATH)")

	rootCmd.AddCommand(versionCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	logger := newLogger(debug)

	cfg, err := config.Load(appVersion)
	if err != nil {
		fmt.Fprintf(out, "✗ Unexpected error: %v\n", err)
		return err
	}

	if outputPath != "" {
		cfg.OutputPath = outputPath
	}

	ref, err := catalog.New(cfg, catalog.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(out, "✗ Unexpected error: %v\n", err)
		return err
	}

	fmt.Fprintln(out, "Downloading latest CSV from API...")

	res, err := ref.Refresh(cmd.Context())
	if err != nil {
		reportFailure(out, err)
		return err
	}

	fmt.Fprintln(out, "✓ CSV downloaded successfully!")
	fmt.Fprintf(out, "  File: %s\n", res.Path)
	fmt.Fprintf(out, "  Size: %.2f MB\n", res.SizeMB())

	return nil
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "petsync version: %s\n", appVersion)
		fmt.Fprintf(out, "Git Commit: %s\n", appGitCommit)
		fmt.Fprintf(out, "Build Time: %s\n", appBuildTime)
	},
}

// newLogger builds the logger backing diagnostics. Logs go to stderr
// so stdout carries only the report.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return logger
}

// reportFailure renders a failed sync. Unexpected status codes get the
// numeric code and a capped response excerpt on their own lines.
func reportFailure(out io.Writer, err error) {
	var statusErr *distrib.UnexpectedStatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(out, "✗ Error downloading CSV: %v\n", statusErr.Err)
		fmt.Fprintf(out, "  Status code: %d\n", statusErr.StatusCode)
		fmt.Fprintf(out, "  Response: %s\n", excerpt(statusErr.Body, excerptLen))
		return
	}

	fmt.Fprintf(out, "✗ Error downloading CSV: %v\n", err)
}

// excerpt returns at most n characters of s.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
