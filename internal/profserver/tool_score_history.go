package profserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_profile/internal/engine/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ScoreHistoryInput is the input for score_history.
type ScoreHistoryInput struct {
	URL   string `json:"url,omitempty" jsonschema:"Profile or job URL to chart; empty lists recent runs across all analyses"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max runs to return (default 20, cap 100)"`
}

// ScoreHistoryOutput is the output for score_history.
type ScoreHistoryOutput struct {
	Runs  []history.Run `json:"runs"`
	Total int           `json:"total"`
}

func registerScoreHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_history",
		Description: "List recent analysis score summaries (total score and per-section percentages over time) for a URL, newest first. Requires DATABASE_URL to be configured.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ScoreHistoryInput) (*mcp.CallToolResult, ScoreHistoryOutput, error) {
		if historyStore == nil {
			return nil, ScoreHistoryOutput{}, errors.New("score_history: history store not configured (set DATABASE_URL)")
		}

		hash := ""
		if input.URL != "" {
			hash = history.HashURL(input.URL)
		}
		runs, err := historyStore.Recent(ctx, hash, input.Limit)
		if err != nil {
			return nil, ScoreHistoryOutput{}, err
		}
		if runs == nil {
			runs = []history.Run{}
		}
		return nil, ScoreHistoryOutput{Runs: runs, Total: len(runs)}, nil
	})
}
