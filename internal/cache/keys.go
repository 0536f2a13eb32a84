package cache

import (
	"strings"
	"time"
)

const (
	GlobalKeyPrefix = "brainfuel"

	factsService  = "facts"
	dailyFactsObj = "daily"
	dayLayout     = "2006-01-02"
)

// GenerateCacheKey joins the global prefix, service name, object type and
// identifier with ":". Optional params are joined by "_" and appended.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// DailyFactsKey is the cache key for the fact batch of day t (UTC).
func DailyFactsKey(t time.Time) string {
	return GenerateCacheKey(factsService, dailyFactsObj, t.UTC().Format(dayLayout))
}
