package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/study-api/internal/app"
	"github.com/phrazzld/study-api/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "studyctl",
	Short: "Smart Study Assistant command line",
	Long: `studyctl turns a topic into study material: a three point summary,
a three question quiz, a study tip and, in math mode, a quantitative problem.

Configuration is read from STUDY_* environment variables (GEMINI_API_KEY is
also honored) and an optional config.yaml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

// bootstrap applies the persistent flags and loads configuration. Logs go to logOut.
func bootstrap(logOut io.Writer) (*config.Config, *slog.Logger, error) {
	if cfgFile != "" {
		if err := os.Setenv(config.ConfigFileEnv, cfgFile); err != nil {
			return nil, nil, fmt.Errorf("failed to set config file: %w", err)
		}
	}
	if logLevel != "" {
		if err := os.Setenv(config.EnvPrefix+"_SERVER_LOG_LEVEL", logLevel); err != nil {
			return nil, nil, fmt.Errorf("failed to set log level: %w", err)
		}
	}

	return app.Bootstrap(logOut)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
