package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseGameType(t *testing.T) {
	gt, ok := ParseGameType("mcq")
	assert.True(t, ok)
	assert.Equal(t, GameTypeMCQ, gt)

	gt, ok = ParseGameType("open_ended")
	assert.True(t, ok)
	assert.Equal(t, GameTypeOpenEnded, gt)

	_, ok = ParseGameType("MCQ")
	assert.False(t, ok)
	_, ok = ParseGameType("")
	assert.False(t, ok)
}

func TestGame_Validate(t *testing.T) {
	tests := []struct {
		name    string
		game    *Game
		wantErr bool
	}{
		{"valid", NewGame("u1", GameTypeMCQ, "  go  ", 3), false},
		{"missing user", NewGame("", GameTypeMCQ, "go", 3), true},
		{"unknown type", NewGame("u1", GameType("essay"), "go", 3), true},
		{"blank topic", NewGame("u1", GameTypeOpenEnded, "   ", 3), true},
		{"zero amount", NewGame("u1", GameTypeOpenEnded, "go", 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.game.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, HasCode(err, CodeInvalidInput))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewGame_TrimsTopic(t *testing.T) {
	g := NewGame("u1", GameTypeMCQ, "  rust  ", 2)
	assert.Equal(t, "rust", g.Topic)
	assert.False(t, g.TimeStarted.IsZero())
	assert.Empty(t, g.Questions)
}

func TestGame_IsReady(t *testing.T) {
	g := NewGame("u1", GameTypeMCQ, "go", 2)
	assert.False(t, g.IsReady())

	g.Questions = []*Question{{ID: "q1"}}
	assert.False(t, g.IsReady())

	g.Questions = append(g.Questions, &Question{ID: "q2"})
	assert.True(t, g.IsReady())

	g.Questions = append(g.Questions, &Question{ID: "q3"})
	assert.True(t, g.IsReady(), "more questions than requested still counts as ready")
}

func TestGeneratedQuestion_Validate(t *testing.T) {
	mcq := GeneratedQuestion{Question: "2+2?", Answer: "4", Options: []string{"1", "2", "3"}}
	assert.NoError(t, mcq.Validate(GameTypeMCQ))

	short := GeneratedQuestion{Question: "2+2?", Answer: "4", Options: []string{"1", "2"}}
	assert.Error(t, short.Validate(GameTypeMCQ))
	assert.NoError(t, short.Validate(GameTypeOpenEnded), "distractors are ignored for open_ended")

	assert.Error(t, GeneratedQuestion{Question: " ", Answer: "4"}.Validate(GameTypeOpenEnded))
	assert.Error(t, GeneratedQuestion{Question: "q", Answer: ""}.Validate(GameTypeOpenEnded))
}

func TestAccuracyTier(t *testing.T) {
	assert.Equal(t, TierImpressive, AccuracyTier(100))
	assert.Equal(t, TierImpressive, AccuracyTier(75.01))
	assert.Equal(t, TierGood, AccuracyTier(75))
	assert.Equal(t, TierGood, AccuracyTier(25.5))
	assert.Equal(t, TierNiceTry, AccuracyTier(25))
	assert.Equal(t, TierNiceTry, AccuracyTier(0))
}

func TestDomainError(t *testing.T) {
	cause := errors.New("boom")
	err := NewInternalError("failed to save", cause)
	assert.Equal(t, "failed to save: boom", err.Error())
	assert.ErrorIs(t, err, cause)

	nf := NewQuestionNotFoundError("q1")
	assert.Equal(t, CodeQuestionNotFound, nf.Code)
	assert.Equal(t, "q1", nf.Context["questionId"])

	data, mErr := nf.MarshalJSON()
	assert.NoError(t, mErr)
	assert.JSONEq(t, `{"code":"QUESTION_NOT_FOUND","message":"Question not found"}`, string(data))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		NewMissingFieldError("topic"),
		NewOutOfRangeError("amount", 11, 1, 10),
	}
	assert.Equal(t, "validation failed: topic is required; amount must be between 1 and 10", errs.Error())
	assert.Equal(t, CodeMissingField, errs[0].Code)
	assert.Equal(t, CodeOutOfRange, errs[1].Code)
	assert.Equal(t, 11, errs[1].Value)
}

func TestSession_IsAuthenticated(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.IsAuthenticated())
	assert.False(t, (&Session{}).IsAuthenticated())
	assert.True(t, (&Session{UserID: "u1"}).IsAuthenticated())
}
