package cmd

import (
	"os/signal"
	"syscall"

	"github.com/phrazzld/study-api/internal/app"
	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the Smart Study Assistant HTTP API until interrupted.

Endpoints:
  GET /                                         status
  GET /health                                   liveness probe
  GET /study?topic=<topic>&mode=<normal|math>   study material`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := bootstrap(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		application, err := app.New(ctx, cfg, logger)
		if err != nil {
			return err
		}
		return application.Serve(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (overrides configuration)")
	rootCmd.AddCommand(serveCmd)
}
