package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/util"
)

const (
	MaxUserInputLength = 2000
	MaxTopicLength     = 50
	MinAmount          = 1
	MaxAmount          = 10
	DefaultPageLimit   = 10
	MaxPageLimit       = 50
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCheckAnswerRequest validates the check answer request. The shape of
// questionId is not checked here; an id that cannot exist is a missing question.
func (v *Validator) ValidateCheckAnswerRequest(questionID, userInput string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(questionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("questionId"))
	}

	if strings.TrimSpace(userInput) == "" {
		errors = append(errors, domain.NewMissingFieldError("userInput"))
	} else if n := utf8.RuneCountInString(userInput); n > MaxUserInputLength {
		errors = append(errors, domain.NewOutOfRangeError("userInput", n, 1, MaxUserInputLength))
	}

	return errors
}

// ValidateCreateGameRequest validates the quiz creation form
func (v *Validator) ValidateCreateGameRequest(topic string, amount int, gameType string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	trimmed := strings.TrimSpace(topic)
	if trimmed == "" {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else if n := utf8.RuneCountInString(trimmed); n > MaxTopicLength {
		errors = append(errors, domain.NewOutOfRangeError("topic", n, 1, MaxTopicLength))
	}

	if amount < MinAmount || amount > MaxAmount {
		errors = append(errors, domain.NewOutOfRangeError("amount", amount, MinAmount, MaxAmount))
	}

	if gameType == "" {
		errors = append(errors, domain.NewMissingFieldError("type"))
	} else if _, ok := domain.ParseGameType(gameType); !ok {
		errors = append(errors, domain.NewInvalidFormatError("type", gameType))
	}

	return errors
}

// ValidateGameID checks a game identifier taken from field. A missing id is a
// validation error; a malformed one names no game and is reported as not found.
func (v *Validator) ValidateGameID(field, gameID string) error {
	if strings.TrimSpace(gameID) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field)}
	}
	if !util.IsULID(gameID) {
		return domain.NewGameNotFoundError(gameID)
	}
	return nil
}

// ParsePagination parses limit and offset query values, applying defaults for empty ones.
func (v *Validator) ParsePagination(limitStr, offsetStr string) (int, int, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	limit := DefaultPageLimit
	if limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		switch {
		case err != nil:
			errors = append(errors, domain.NewInvalidFormatError("limit", limitStr))
		case parsed < 1 || parsed > MaxPageLimit:
			errors = append(errors, domain.NewOutOfRangeError("limit", parsed, 1, MaxPageLimit))
		default:
			limit = parsed
		}
	}

	offset := 0
	if offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			errors = append(errors, domain.NewInvalidFormatError("offset", offsetStr))
		} else {
			offset = parsed
		}
	}

	return limit, offset, errors
}
