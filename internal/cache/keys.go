package cache

import "strings"

const (
	GlobalKeyPrefix = "devquizz"

	ServiceAnswer = "answer"
	ServiceGame   = "game"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// QuestionKeyCacheKey is where the type and answer of a question are cached.
func QuestionKeyCacheKey(questionID string) string {
	return GenerateCacheKey(ServiceAnswer, "question_key", questionID)
}

// PlayViewCacheKey is where the answer-free play view of a ready game is cached.
func PlayViewCacheKey(gameID string) string {
	return GenerateCacheKey(ServiceGame, "play_view", gameID)
}
