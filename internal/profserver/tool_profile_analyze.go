package profserver

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/anatolykoptev/go_profile/internal/engine"
	"github.com/anatolykoptev/go_profile/internal/engine/history"
	"github.com/anatolykoptev/go_profile/internal/engine/profile"
	"github.com/anatolykoptev/go_profile/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ProfileAnalyzeInput is the input for profile_analyze.
type ProfileAnalyzeInput struct {
	HTML     string `json:"html,omitempty" jsonschema:"Raw profile page HTML"`
	URL      string `json:"url,omitempty" jsonschema:"LinkedIn profile URL to fetch (used when html is absent)"`
	Language string `json:"language,omitempty" jsonschema:"Output language: en (default) or zh"`
	AI       bool   `json:"ai,omitempty" jsonschema:"Fill ai_recommendation slots for top-priority sections via LLM"`
}

// ProfileAnalyzeOutput is the output for profile_analyze.
type ProfileAnalyzeOutput struct {
	Snapshot *profile.Snapshot `json:"snapshot"`
	URL      string            `json:"url,omitempty"`
}

func registerProfileAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_analyze",
		Description: "Analyze a LinkedIn profile page: extract sections from HTML (or fetch by URL), score each section against the profile weight table, and return a full snapshot with total score, per-section issues/recommendations, and top priorities. Supports en and zh output.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ProfileAnalyzeInput) (*mcp.CallToolResult, ProfileAnalyzeOutput, error) {
		lang := toolutil.NormLang(input.Language)

		cacheKey := engine.CacheKey("profile_analyze", input.HTML, input.URL, lang, fmt.Sprint(input.AI))
		if out, ok := engine.CacheGetJSON[ProfileAnalyzeOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		raw, err := toolutil.ResolveHTML(ctx, input.HTML, input.URL)
		if err != nil {
			return nil, ProfileAnalyzeOutput{}, err
		}

		analyzer := profile.NewAnalyzer(lang, nil)
		snap, err := analyzer.AnalyzeHTML(raw)
		if err != nil {
			return nil, ProfileAnalyzeOutput{}, fmt.Errorf("profile_analyze: %w", err)
		}
		engine.IncrProfileAnalyses()

		if input.AI {
			enrichSnapshot(ctx, snap)
		}

		recordHistory(ctx, input.URL, "profile", snap)

		out := ProfileAnalyzeOutput{Snapshot: snap, URL: input.URL}
		engine.CacheSetJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

// enrichSnapshot fills the ai_recommendation slot for the top-priority
// sections. LLM failures degrade to rule-generated recommendations only;
// computed scores are never touched.
func enrichSnapshot(ctx context.Context, snap *profile.Snapshot) {
	type gap struct {
		sec    profile.Section
		impact int
	}
	var gaps []gap
	for sec, res := range snap.Sections {
		if impact := res.MaxScore - res.Score; impact > 0 {
			gaps = append(gaps, gap{sec, impact})
		}
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].impact != gaps[j].impact {
			return gaps[i].impact > gaps[j].impact
		}
		return gaps[i].sec < gaps[j].sec
	})
	if len(gaps) > 3 {
		gaps = gaps[:3]
	}

	for _, g := range gaps {
		res := snap.Sections[g.sec]
		prompt := fmt.Sprintf(
			"A LinkedIn profile section needs improvement.\nSection: %s\nCurrent content: %s\nDetected issues: %s\n\nWrite one specific, actionable improvement suggestion (2-3 sentences, language: %s). Plain text only.",
			g.sec,
			engine.TruncateRunes(res.Content, 500, "..."),
			strings.Join(res.Issues, "; "),
			snap.Language,
		)
		rec, err := engine.CallLLM(ctx, prompt)
		if err != nil {
			slog.Debug("profile_analyze: ai enrichment skipped", slog.String("section", string(g.sec)), slog.Any("error", err))
			return
		}
		res.AIRecommendation = engine.TruncateRunes(rec, 600, "...")
	}
}

// recordHistory persists the composite summary when the history store and a
// URL are available. Failures are logged, never surfaced.
func recordHistory(ctx context.Context, pageURL, kind string, snap *profile.Snapshot) {
	if historyStore == nil || pageURL == "" {
		return
	}
	sections := make(map[string]int, len(snap.Sections))
	for sec, res := range snap.Sections {
		sections[string(sec)] = res.Percentage
	}
	if err := historyStore.Add(ctx, history.HashURL(pageURL), kind, snap.TotalScore, sections); err != nil {
		slog.Warn("score history record failed", slog.Any("error", err))
	}
}
