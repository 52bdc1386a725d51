package profserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_profile/internal/engine"
	"github.com/anatolykoptev/go_profile/internal/engine/profile"
	"github.com/anatolykoptev/go_profile/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ResumeEntry is one experience/education/certification record in a résumé.
type ResumeEntry struct {
	Title       string `json:"title"`
	Org         string `json:"org,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResumeScoreInput is the input for resume_score: already-structured résumé
// sections, no page parsing involved.
type ResumeScoreInput struct {
	Summary        string        `json:"summary,omitempty" jsonschema:"Professional summary text"`
	Experience     []ResumeEntry `json:"experience,omitempty"`
	Education      []ResumeEntry `json:"education,omitempty"`
	Certifications []ResumeEntry `json:"certifications,omitempty"`
	Skills         []string      `json:"skills,omitempty"`
	Language       string        `json:"language,omitempty" jsonschema:"Output language: en (default) or zh"`
}

// ResumeScoreOutput is the output for resume_score.
type ResumeScoreOutput struct {
	Snapshot *profile.Snapshot `json:"snapshot"`
}

func registerResumeScore(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_score",
		Description: "Score structured resume content (summary, experience, skills, education, certifications) against the resume weight table. Returns a snapshot with per-section scores, issues, recommendations, and top priorities. Same rule engine as profile_analyze, different weights.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ResumeScoreInput) (*mcp.CallToolResult, ResumeScoreOutput, error) {
		if input.Summary == "" && len(input.Experience) == 0 && len(input.Skills) == 0 &&
			len(input.Education) == 0 && len(input.Certifications) == 0 {
			return nil, ResumeScoreOutput{}, errors.New("resume_score: at least one section is required")
		}

		ext := profile.NewExtraction()
		ext.About = input.Summary
		ext.Experience = convertEntries(input.Experience)
		ext.Education = convertEntries(input.Education)
		ext.Certifications = convertEntries(input.Certifications)
		ext.Skills = input.Skills
		ext.SkillCount = len(input.Skills)

		snap := profile.ScoreResume(ext, toolutil.NormLang(input.Language))
		engine.IncrResumeScores()

		return nil, ResumeScoreOutput{Snapshot: snap}, nil
	})
}

func convertEntries(in []ResumeEntry) []profile.Entry {
	if len(in) == 0 {
		return nil
	}
	out := make([]profile.Entry, len(in))
	for i, e := range in {
		out[i] = profile.Entry{Title: e.Title, Org: e.Org, Duration: e.Duration, Description: e.Description}
	}
	return out
}
