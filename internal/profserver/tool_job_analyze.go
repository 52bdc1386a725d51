package profserver

import (
	"context"
	"fmt"

	"github.com/anatolykoptev/go_profile/internal/engine"
	"github.com/anatolykoptev/go_profile/internal/engine/jobposting"
	"github.com/anatolykoptev/go_profile/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// JobAnalyzeInput is the input for job_analyze.
type JobAnalyzeInput struct {
	HTML       string `json:"html,omitempty" jsonschema:"Raw job posting page HTML"`
	URL        string `json:"url,omitempty" jsonschema:"LinkedIn job URL to fetch (used when html is absent)"`
	ResumeText string `json:"resume_text,omitempty" jsonschema:"Resume text to match against the posting"`
	Language   string `json:"language,omitempty" jsonschema:"Output language: en (default) or zh"`
}

// JobAnalyzeOutput is the output for job_analyze.
type JobAnalyzeOutput struct {
	Posting *jobposting.Posting     `json:"posting"`
	Quality *jobposting.Quality     `json:"quality"`
	Match   *jobposting.MatchResult `json:"match,omitempty"`
}

func registerJobAnalyze(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_analyze",
		Description: "Analyze a LinkedIn job posting: extract structured fields (title, company, location, salary, description as markdown, skills) from HTML or by URL, score posting completeness, and optionally compute a resume match score (Jaccard keyword overlap, 0-100) with matching/missing keyword lists.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input JobAnalyzeInput) (*mcp.CallToolResult, JobAnalyzeOutput, error) {
		cacheKey := engine.CacheKey("job_analyze", input.HTML, input.URL, input.ResumeText)
		if out, ok := engine.CacheGetJSON[JobAnalyzeOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		raw, err := toolutil.ResolveHTML(ctx, input.HTML, input.URL)
		if err != nil {
			return nil, JobAnalyzeOutput{}, err
		}

		posting, err := jobposting.Parse(raw)
		if err != nil {
			return nil, JobAnalyzeOutput{}, fmt.Errorf("job_analyze: %w", err)
		}
		if posting.URL == "" {
			posting.URL = input.URL
		}
		if posting.JobID == "" {
			posting.JobID = jobposting.ExtractJobID(input.URL)
		}
		engine.IncrJobAnalyses()

		out := JobAnalyzeOutput{
			Posting: posting,
			Quality: jobposting.ScoreQuality(posting),
		}
		if input.ResumeText != "" {
			match := jobposting.Match(jobposting.ExtractKeywords(input.ResumeText), posting)
			out.Match = &match
		}

		engine.CacheSetJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}
