package profserver

import (
	"context"

	"github.com/anatolykoptev/go_profile/internal/engine/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTracker(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_add",
		Description: "Save a job application to the local tracker. Statuses: saved (default), applied, interview, offer, rejected. Optionally stores the match score from job_analyze for later comparison.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input tracker.AddInput) (*mcp.CallToolResult, tracker.Result, error) {
		res, err := tracker.Add(ctx, input)
		if err != nil {
			return nil, tracker.Result{}, err
		}
		return nil, *res, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_list",
		Description: "List tracked job applications, optionally filtered by status (saved, applied, interview, offer, rejected). Sorted by last update, newest first.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input tracker.ListInput) (*mcp.CallToolResult, tracker.ListResult, error) {
		res, err := tracker.List(ctx, input)
		if err != nil {
			return nil, tracker.ListResult{}, err
		}
		return nil, *res, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "job_tracker_update",
		Description: "Update the status and/or notes of a tracked job application by id.",
	}, func(ctx context.Context, req *mcp.CallToolRequest, input tracker.UpdateInput) (*mcp.CallToolResult, tracker.Result, error) {
		res, err := tracker.Update(ctx, input)
		if err != nil {
			return nil, tracker.Result{}, err
		}
		return nil, *res, nil
	})
}
