package generation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phrazzld/study-api/internal/domain"
	"github.com/phrazzld/study-api/internal/generation"
	"github.com/phrazzld/study-api/internal/mocks"
	"github.com/phrazzld/study-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGenerator(t *testing.T, model generation.Model) *generation.ContentGenerator {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	gen, err := generation.NewContentGenerator(model, log)
	require.NoError(t, err)
	return gen
}

func TestNewContentGenerator_NilLogger(t *testing.T) {
	t.Parallel()

	gen, err := generation.NewContentGenerator(mocks.NewMockModel(), nil)
	assert.Nil(t, gen)
	assert.Error(t, err)
}

func TestGenerateStudyContent_NormalMode(t *testing.T) {
	t.Parallel()

	model := mocks.NewMockModel(mocks.SummaryReply, mocks.QuizReply, mocks.TipReply)
	gen := newGenerator(t, model)

	content, err := gen.GenerateStudyContent(context.Background(), mocks.SampleTopic(), domain.ModeNormal)
	require.NoError(t, err)

	if diff := cmp.Diff(mocks.SampleContent(domain.ModeNormal), content); diff != "" {
		t.Errorf("unexpected study content (-want +got):\n%s", diff)
	}

	prompts := model.Prompts()
	require.Len(t, prompts, 3, "normal mode issues exactly three prompts")
	assert.Contains(t, prompts[0], "exactly 3 concise bullet points")
	assert.Contains(t, prompts[1], "multiple-choice questions")
	assert.Contains(t, prompts[2], "practical study tip")
	for _, p := range prompts {
		assert.Contains(t, p, `"Photosynthesis"`)
		assert.Contains(t, p, mocks.SampleTopic().Extract)
	}
}

func TestGenerateStudyContent_MathMode(t *testing.T) {
	t.Parallel()

	model := mocks.NewMockModel(mocks.SummaryReply, mocks.QuizReply, mocks.TipReply, mocks.MathReply)
	gen := newGenerator(t, model)

	content, err := gen.GenerateStudyContent(context.Background(), mocks.SampleTopic(), domain.ModeMath)
	require.NoError(t, err)

	require.NotNil(t, content.MathQuestion)
	assert.Equal(t, "6", content.MathQuestion.Answer, "numeric answers are rendered as text")
	assert.Equal(t, 4, model.CallCount())
	assert.Contains(t, model.Prompts()[3], "quantitative or logical problem")
}

func TestGenerateStudyContent_EmptyModeIsNormal(t *testing.T) {
	t.Parallel()

	model := mocks.NewMockModel(mocks.SummaryReply, mocks.QuizReply, mocks.TipReply)
	content, err := newGenerator(t, model).GenerateStudyContent(context.Background(), mocks.SampleTopic(), "")

	require.NoError(t, err)
	assert.Nil(t, content.MathQuestion)
	assert.Equal(t, 3, model.CallCount())
}

func TestGenerateStudyContent_AcceptsCorrectAnswerIndexKey(t *testing.T) {
	t.Parallel()

	quiz := strings.ReplaceAll(mocks.QuizReply, `"correctAnswer"`, `"correctAnswerIndex"`)
	model := mocks.NewMockModel(mocks.SummaryReply, quiz, mocks.TipReply)

	content, err := newGenerator(t, model).GenerateStudyContent(context.Background(), mocks.SampleTopic(), domain.ModeNormal)
	require.NoError(t, err)
	assert.Equal(t, 2, content.Quiz[2].CorrectAnswerIndex)
}

func TestGenerateStudyContent_Failures(t *testing.T) {
	t.Parallel()

	upstream := errors.New("connection reset")

	tests := []struct {
		name      string
		replies   []mocks.ModelReply
		mode      domain.Mode
		wantStage generation.Stage
		wantErr   error
		wantCalls int
	}{
		{
			name:      "summary call fails",
			replies:   []mocks.ModelReply{{Err: upstream}},
			mode:      domain.ModeNormal,
			wantStage: generation.StageSummary,
			wantErr:   generation.ErrGenerationFailed,
			wantCalls: 1,
		},
		{
			name:      "summary is not json",
			replies:   []mocks.ModelReply{{Text: "Here are three points: ..."}},
			mode:      domain.ModeNormal,
			wantStage: generation.StageSummary,
			wantErr:   generation.ErrInvalidResponse,
			wantCalls: 1,
		},
		{
			name:      "summary has wrong length",
			replies:   []mocks.ModelReply{{Text: `["only one"]`}},
			mode:      domain.ModeNormal,
			wantStage: generation.StageSummary,
			wantErr:   generation.ErrInvalidResponse,
			wantCalls: 1,
		},
		{
			name:      "quiz blocked",
			replies:   []mocks.ModelReply{{Text: mocks.SummaryReply}, {Err: generation.ErrContentBlocked}},
			mode:      domain.ModeNormal,
			wantStage: generation.StageQuiz,
			wantErr:   generation.ErrContentBlocked,
			wantCalls: 2,
		},
		{
			name: "quiz answer index out of range",
			replies: []mocks.ModelReply{
				{Text: mocks.SummaryReply},
				{Text: strings.Replace(mocks.QuizReply, `"correctAnswer": 2`, `"correctAnswer": 7`, 1)},
			},
			mode:      domain.ModeNormal,
			wantStage: generation.StageQuiz,
			wantErr:   generation.ErrInvalidResponse,
			wantCalls: 2,
		},
		{
			name: "quiz answer index missing",
			replies: []mocks.ModelReply{
				{Text: mocks.SummaryReply},
				{Text: strings.Replace(mocks.QuizReply, `, "correctAnswer": 0`, ``, 1)},
			},
			mode:      domain.ModeNormal,
			wantStage: generation.StageQuiz,
			wantErr:   generation.ErrInvalidResponse,
			wantCalls: 2,
		},
		{
			name:      "empty tip",
			replies:   []mocks.ModelReply{{Text: mocks.SummaryReply}, {Text: mocks.QuizReply}, {Text: "  \n"}},
			mode:      domain.ModeNormal,
			wantStage: generation.StageTip,
			wantErr:   generation.ErrInvalidResponse,
			wantCalls: 3,
		},
		{
			name: "math malformed",
			replies: []mocks.ModelReply{
				{Text: mocks.SummaryReply}, {Text: mocks.QuizReply}, {Text: mocks.TipReply}, {Text: "{problem:"},
			},
			mode:      domain.ModeMath,
			wantStage: generation.StageMath,
			wantErr:   generation.ErrInvalidResponse,
			wantCalls: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			model := &mocks.MockModel{Replies: tc.replies}
			content, err := newGenerator(t, model).GenerateStudyContent(context.Background(), mocks.SampleTopic(), tc.mode)

			assert.Nil(t, content, "no partial content on failure")
			require.Error(t, err)

			var genErr *generation.Error
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tc.wantStage, genErr.Stage)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, domain.ErrGeneration)
			assert.Contains(t, err.Error(), "AI generation failed")
			assert.Equal(t, tc.wantCalls, model.CallCount(), "sequence stops at the first failure")
		})
	}
}

func TestGenerateStudyContent_NotInitialized(t *testing.T) {
	t.Parallel()

	content, err := newGenerator(t, nil).GenerateStudyContent(context.Background(), mocks.SampleTopic(), domain.ModeNormal)

	assert.Nil(t, content)
	assert.ErrorIs(t, err, generation.ErrNotInitialized)
	assert.ErrorIs(t, err, domain.ErrGeneration)
}

func TestGenerateStudyContent_InvalidMode(t *testing.T) {
	t.Parallel()

	model := mocks.NewMockModel()
	_, err := newGenerator(t, model).GenerateStudyContent(context.Background(), mocks.SampleTopic(), domain.Mode("chemistry"))

	assert.ErrorIs(t, err, domain.ErrInvalidMode)
	assert.Zero(t, model.CallCount())
}

func TestGenerateStudyContent_ContextCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	model := mocks.NewMockModel(mocks.SummaryReply)
	_, err := newGenerator(t, model).GenerateStudyContent(ctx, mocks.SampleTopic(), domain.ModeNormal)

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	err := &generation.Error{Stage: generation.StageQuiz, Err: generation.ErrInvalidResponse}
	assert.Equal(t, "AI generation failed at quiz: invalid response from language model", err.Error())
}
