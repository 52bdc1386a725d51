// Package profserver wires the analysis engine into MCP tools:
// profile_analyze, job_analyze, resume_score, the job tracker CRUD, and
// score_history.
package profserver

import (
	"github.com/anatolykoptev/go_profile/internal/engine/history"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// historyStore is the optional score-history backend, set from main when
// DATABASE_URL is configured.
var historyStore *history.Store

// SetHistory sets the package-level score-history store.
func SetHistory(s *history.Store) { historyStore = s }

// RegisterTools registers all profile/job analysis tools on the MCP server.
func RegisterTools(server *mcp.Server) {
	registerProfileAnalyze(server)
	registerJobAnalyze(server)
	registerResumeScore(server)
	registerTracker(server)
	registerScoreHistory(server)
}
