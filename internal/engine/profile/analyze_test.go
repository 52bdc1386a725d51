package profile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeHTMLDeterministic(t *testing.T) {
	a := NewAnalyzer("en", nil)

	first, err := a.AnalyzeHTML(profileFixture)
	require.NoError(t, err)
	second, err := a.AnalyzeHTML(profileFixture)
	require.NoError(t, err)

	fj, err := json.Marshal(first)
	require.NoError(t, err)
	sj, err := json.Marshal(second)
	require.NoError(t, err)
	require.JSONEq(t, string(fj), string(sj), "same page must yield identical snapshots")
}

func TestAnalyzeHTMLFullPipeline(t *testing.T) {
	a := NewAnalyzer("en", nil)
	snap, err := a.AnalyzeHTML(profileFixture)
	require.NoError(t, err)

	require.Len(t, snap.Sections, len(ProfileWeights))
	require.Equal(t, "en", snap.Language)
	require.NotEmpty(t, snap.Summary)
	require.LessOrEqual(t, snap.TotalScore, 100)
	require.Greater(t, snap.TotalScore, 50, "fixture is a well-filled profile")

	// Primary extraction succeeded, so nothing should carry fallback quality.
	for sec, res := range snap.Sections {
		require.NotEqual(t, QualityBasic, res.Quality, "section %s", sec)
	}
}

func TestAnalyzeObfuscatedPageUsesFallback(t *testing.T) {
	a := NewAnalyzer("en", nil)
	snap, err := a.AnalyzeHTML(obfuscatedFixture)
	require.NoError(t, err)

	exp := snap.Sections[SectionExperience]
	require.True(t, exp.Present, "fallback should recover experience")
	require.Equal(t, QualityBasic, exp.Quality)

	skills := snap.Sections[SectionSkills]
	require.True(t, skills.Present, "fallback should recover skills")
}

func TestAnalyzeEmptyPage(t *testing.T) {
	a := NewAnalyzer("en", nil)
	snap, err := a.AnalyzeHTML("<html><body></body></html>")
	require.NoError(t, err)

	require.Equal(t, 0, snap.TotalScore)
	require.Len(t, snap.TopPriorities, 3)
	for sec, res := range snap.Sections {
		require.Equal(t, StatusWarning, res.Status, "section %s", sec)
	}
}

func TestNewAnalyzerDefaults(t *testing.T) {
	a := NewAnalyzer("", nil)
	require.Equal(t, "en", a.Language)
	require.Equal(t, 100, a.Weights.Total())

	zh := NewAnalyzer("zh", ResumeWeights)
	require.Equal(t, "zh", zh.Language)
	require.Equal(t, ResumeWeights, zh.Weights)
}
