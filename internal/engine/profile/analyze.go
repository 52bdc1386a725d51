package profile

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_profile/internal/engine"
	"golang.org/x/net/html"
)

// Analyzer runs the full pipeline for one language and weight table. A fresh
// Analyzer per request is cheap — all heavy state is package-level data.
type Analyzer struct {
	Language string
	Weights  WeightTable

	loc *Locale
}

// NewAnalyzer builds an analyzer. An empty language defaults to English; a
// nil weight table defaults to the profile table.
func NewAnalyzer(lang string, weights WeightTable) *Analyzer {
	lang = engine.NormLang(lang)
	if weights == nil {
		weights = ProfileWeights
	}
	return &Analyzer{
		Language: lang,
		Weights:  weights,
		loc:      GetLocale(lang),
	}
}

// Analyze runs extract, fallback scan, merge, and score over a parsed page.
// The same tree always yields the same snapshot.
func (a *Analyzer) Analyze(root *html.Node) *Snapshot {
	ext := Extract(root, a.loc)
	Merge(ext, Scan(root))
	return Score(ext, a.Weights, a.loc)
}

// AnalyzeHTML parses raw HTML and analyzes it.
func (a *Analyzer) AnalyzeHTML(raw string) (*Snapshot, error) {
	root, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse profile html: %w", err)
	}
	return a.Analyze(root), nil
}

// ScoreResume scores already-extracted résumé content against the résumé
// weight table. Page-presentation sections never participate.
func ScoreResume(ext *Extraction, lang string) *Snapshot {
	loc := GetLocale(engine.NormLang(lang))
	return Score(ext, ResumeWeights, loc)
}
