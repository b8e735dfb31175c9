package domain

// EvaluationResult is the outcome of scoring one submitted answer.
// Exactly one of IsCorrect and PercentageSimilar is set for the scored
// types; both are nil when the question type is not scored.
type EvaluationResult struct {
	QuestionID        string
	QuestionType      GameType
	IsCorrect         *bool
	PercentageSimilar *int
}

// Scored reports whether a score was computed.
func (r *EvaluationResult) Scored() bool {
	return r.IsCorrect != nil || r.PercentageSimilar != nil
}
