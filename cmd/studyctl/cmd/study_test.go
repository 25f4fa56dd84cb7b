package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/phrazzld/study-api/internal/api"
	"github.com/phrazzld/study-api/internal/api/shared"
	"github.com/phrazzld/study-api/internal/domain"
	"github.com/phrazzld/study-api/internal/mocks"
	"github.com/phrazzld/study-api/internal/service"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	c := &cobra.Command{Use: "study"}
	c.SetOut(&stdout)
	c.SetErr(&stderr)
	c.SetContext(context.Background())
	return c, &stdout, &stderr
}

func newTestService(t *testing.T, generator service.ContentGenerator) service.StudyService {
	t.Helper()
	svc, err := service.NewStudyService(
		mocks.NewMockTopicFetcherWithData(mocks.SampleTopic()),
		generator,
		nil,
	)
	require.NoError(t, err)
	return svc
}

func TestRunStudySuccess(t *testing.T) {
	c, stdout, stderr := newTestCommand()
	svc := newTestService(t, mocks.NewMockContentGeneratorWithContent(mocks.SampleContent(domain.ModeMath)))

	err := runStudy(c, svc, service.StudyRequest{Topic: "photosynthesis", Mode: "math"})
	require.NoError(t, err)
	assert.Empty(t, stderr.String())

	var resp api.StudyResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "Photosynthesis", resp.Topic)
	assert.Equal(t, domain.ModeMath, resp.Mode)
	assert.Len(t, resp.Quiz, 3)
	require.NotNil(t, resp.MathQuestion)
	assert.Equal(t, "6", resp.MathQuestion.Answer)
}

func TestRunStudyErrors(t *testing.T) {
	tests := []struct {
		name      string
		generator service.ContentGenerator
		req       service.StudyRequest
		wantError string
		wantCode  string
	}{
		{
			name:      "short topic",
			generator: mocks.NewMockContentGeneratorWithContent(mocks.SampleContent(domain.ModeNormal)),
			req:       service.StudyRequest{Topic: "a"},
			wantError: "Bad Request",
			wantCode:  "400",
		},
		{
			name:      "generation failure",
			generator: mocks.MockContentGeneratorThatFails(),
			req:       service.StudyRequest{Topic: "photosynthesis"},
			wantError: "AI Generation Failed",
			wantCode:  "500",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, stdout, stderr := newTestCommand()
			svc := newTestService(t, tc.generator)

			err := runStudy(c, svc, tc.req)
			require.ErrorIs(t, err, ErrStudyFailed)
			assert.True(t, strings.HasSuffix(err.Error(), tc.wantCode))
			assert.Empty(t, stdout.String())

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(stderr.Bytes(), &body))
			assert.Equal(t, tc.wantError, body.Error)
		})
	}
}

func TestWriteJSONIndent(t *testing.T) {
	var compact, pretty bytes.Buffer
	require.NoError(t, writeJSON(&compact, map[string]int{"a": 1}, false))
	require.NoError(t, writeJSON(&pretty, map[string]int{"a": 1}, true))

	assert.Equal(t, "{\"a\":1}\n", compact.String())
	assert.Equal(t, "{\n  \"a\": 1\n}\n", pretty.String())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	versionCmd.Run(versionCmd, nil)
	assert.Contains(t, out.String(), "studyctl dev")
	assert.Contains(t, out.String(), "Go Version:")
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"study", "serve", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
