package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int

	FetchTimeout  time.Duration
	FetchRPS      float64 // LinkedIn request rate limit (requests per second)
	MaxFetchBytes int64

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	DatabaseURL   string // Postgres score history; empty = disabled
	TrackerDBPath string // SQLite application tracker location

	HTTPClient    *http.Client
	BrowserClient *BrowserClient // nil = stealth fetching disabled, plain HTTP fallback
	LLMClient     *llm.Client    // nil = AI recommendations disabled
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (profile, jobposting, tracker).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
	initFetchLimiter()
}
