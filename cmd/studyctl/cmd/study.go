package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/phrazzld/study-api/internal/api"
	"github.com/phrazzld/study-api/internal/app"
	"github.com/phrazzld/study-api/internal/service"
	"github.com/spf13/cobra"
)

// ErrStudyFailed is returned after the error body has been printed.
var ErrStudyFailed = errors.New("study request failed")

var (
	studyTopic  string
	studyMode   string
	studyPretty bool
)

var studyCmd = &cobra.Command{
	Use:   "study [topic]",
	Short: "Generate study material for a topic",
	Long: `Generate study material for a topic and print it as JSON, in the same
shape GET /study returns.

Examples:
  studyctl study Photosynthesis
  studyctl study --topic "Pythagorean theorem" --mode math`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := studyTopic
		if topic == "" && len(args) == 1 {
			topic = args[0]
		}

		cfg, logger, err := bootstrap(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		application, err := app.New(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer application.Cleanup(cmd.Context())

		return runStudy(cmd, application.StudyService, service.StudyRequest{Topic: topic, Mode: studyMode})
	},
}

// runStudy executes one request and writes the response or error body.
func runStudy(cmd *cobra.Command, svc service.StudyService, req service.StudyRequest) error {
	result, err := svc.Study(cmd.Context(), req)
	if err != nil {
		if encErr := writeJSON(cmd.ErrOrStderr(), api.ErrorResponseFor(err, req.Topic), studyPretty); encErr != nil {
			return encErr
		}
		return fmt.Errorf("%w: %d", ErrStudyFailed, api.MapErrorToStatusCode(err))
	}
	return writeJSON(cmd.OutOrStdout(), api.NewStudyResponse(result), studyPretty)
}

func writeJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func init() {
	studyCmd.Flags().StringVarP(&studyTopic, "topic", "t", "", "topic to study")
	studyCmd.Flags().StringVarP(&studyMode, "mode", "m", "normal", "study mode: normal or math")
	studyCmd.Flags().BoolVar(&studyPretty, "pretty", true, "indent JSON output")
	rootCmd.AddCommand(studyCmd)
}
