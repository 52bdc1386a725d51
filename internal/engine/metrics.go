package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ProfileAnalyses  atomic.Int64
	JobAnalyses      atomic.Int64
	ResumeScores     atomic.Int64
	FallbackSections atomic.Int64
	FetchRequests    atomic.Int64
	FetchErrors      atomic.Int64
	LLMCalls         atomic.Int64
	LLMErrors        atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"profile_analyses":  metrics.ProfileAnalyses.Load(),
		"job_analyses":      metrics.JobAnalyses.Load(),
		"resume_scores":     metrics.ResumeScores.Load(),
		"fallback_sections": metrics.FallbackSections.Load(),
		"fetch_requests":    metrics.FetchRequests.Load(),
		"fetch_errors":      metrics.FetchErrors.Load(),
		"llm_calls":         metrics.LLMCalls.Load(),
		"llm_errors":        metrics.LLMErrors.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"profile_analyses", "job_analyses", "resume_scores",
		"fallback_sections",
		"fetch_requests", "fetch_errors",
		"llm_calls", "llm_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the tool layer and sub-packages.
func IncrProfileAnalyses()  { metrics.ProfileAnalyses.Add(1) }
func IncrJobAnalyses()      { metrics.JobAnalyses.Add(1) }
func IncrResumeScores()     { metrics.ResumeScores.Add(1) }
func IncrFallbackSections() { metrics.FallbackSections.Add(1) }
func IncrFetchRequests()    { metrics.FetchRequests.Add(1) }
func IncrFetchErrors()      { metrics.FetchErrors.Add(1) }
