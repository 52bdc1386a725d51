// Package toolutil provides shared helpers for go_profile MCP tools.
package toolutil

import (
	"context"
	"errors"
	"strings"

	"github.com/anatolykoptev/go_profile/internal/engine"
)

// NormLang normalises a language field: empty string → "en".
func NormLang(lang string) string {
	return engine.NormLang(lang)
}

// ResolveHTML returns the page HTML for a tool invocation: the raw html
// argument when given, otherwise a fetch of the url argument. Exactly one of
// the two must be provided.
func ResolveHTML(ctx context.Context, rawHTML, pageURL string) (string, error) {
	if rawHTML != "" {
		return rawHTML, nil
	}
	if pageURL == "" {
		return "", errors.New("either html or url is required")
	}
	if !strings.Contains(pageURL, "linkedin.com") {
		return "", errors.New("url must be a linkedin.com page")
	}
	data, err := engine.FetchPage(ctx, pageURL)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
