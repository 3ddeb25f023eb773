// Package mcpserver exposes the submission history over the Model Context
// Protocol so MCP clients can inspect stored monitoreos.
package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"monreview/internal/monitor"
	"monreview/internal/server"
)

// SubmissionStore is the slice of the backend store the MCP tools need.
type SubmissionStore interface {
	QuerySubmissions(ctx context.Context, site string, limit int) ([]server.SubmissionSummary, error)
	QueryRows(ctx context.Context, submissionID int64) ([]server.StoredRow, error)
}

// Server wraps the MCP server with submission query capabilities.
type Server struct {
	mcpServer *mcp.Server
	store     SubmissionStore
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
}

// NewServer creates a new MCP server instance over the given store.
func NewServer(cfg Config, store SubmissionStore) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("mcpserver: store is required")
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer: mcp.NewServer(impl, nil),
		store:     store,
	}
	s.registerTools()

	return s, nil
}

// ListSitesArgs defines the input for list_sites tool.
type ListSitesArgs struct{}

// SiteInfo is one monitored site with its allowed status codes.
type SiteInfo struct {
	Site     string   `json:"site" jsonschema:"site identifier"`
	Name     string   `json:"name" jsonschema:"display name"`
	Statuses []string `json:"statuses" jsonschema:"allowed problem status labels"`
}

// ListSitesResult defines the output for list_sites tool.
type ListSitesResult struct {
	Sites []SiteInfo `json:"sites" jsonschema:"monitored sites"`
}

// SubmissionsArgs defines the input for get_submissions tool.
type SubmissionsArgs struct {
	Site  string `json:"site,omitempty" jsonschema:"site to filter by"`
	Limit int    `json:"limit,omitempty" jsonschema:"number of submissions to return"`
}

// SubmissionsResult wraps submission summaries for tool output.
type SubmissionsResult struct {
	Submissions []server.SubmissionSummary `json:"submissions" jsonschema:"stored submissions"`
}

// SubmissionRowsArgs defines the input for get_submission_rows tool.
type SubmissionRowsArgs struct {
	SubmissionID int64 `json:"submission_id" jsonschema:"submission to fetch rows for"`
}

// SubmissionRowsResult wraps the rows of one submission.
type SubmissionRowsResult struct {
	Rows []server.StoredRow `json:"rows" jsonschema:"per-client review rows"`
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sites",
		Description: "List the monitored sites (veeam, site24, sophos) with their display names and the problem status labels each one accepts.",
	}, s.handleListSites)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_submissions",
		Description: "Query stored monitoring submissions, newest first. Optionally filter by site. Each entry carries how many clients were confirmed OK and how many were reported with problems.",
	}, s.handleGetSubmissions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_submission_rows",
		Description: "Fetch the per-client rows of one stored submission: status code, observation text, and last restore date where present.",
	}, s.handleGetSubmissionRows)
}

// handleListSites reports the known sites and their status vocabularies.
func (s *Server) handleListSites(ctx context.Context, _ *mcp.CallToolRequest, _ ListSitesArgs) (*mcp.CallToolResult, ListSitesResult, error) {
	result := ListSitesResult{}
	for _, site := range monitor.Sites() {
		info := SiteInfo{
			Site: string(site),
			Name: site.DisplayName(),
		}
		for _, opt := range site.StatusOptions() {
			info.Statuses = append(info.Statuses, opt.Label)
		}
		result.Sites = append(result.Sites, info)
	}
	return nil, result, nil
}

// handleGetSubmissions queries the history store.
func (s *Server) handleGetSubmissions(ctx context.Context, _ *mcp.CallToolRequest, args SubmissionsArgs) (*mcp.CallToolResult, SubmissionsResult, error) {
	if args.Site != "" && !monitor.Site(args.Site).Valid() {
		return nil, SubmissionsResult{}, fmt.Errorf("unknown site: %s", args.Site)
	}

	subs, err := s.store.QuerySubmissions(ctx, args.Site, args.Limit)
	if err != nil {
		return nil, SubmissionsResult{}, fmt.Errorf("failed to query submissions: %w", err)
	}

	return nil, SubmissionsResult{Submissions: subs}, nil
}

// handleGetSubmissionRows fetches the rows of one submission.
func (s *Server) handleGetSubmissionRows(ctx context.Context, _ *mcp.CallToolRequest, args SubmissionRowsArgs) (*mcp.CallToolResult, SubmissionRowsResult, error) {
	if args.SubmissionID <= 0 {
		return nil, SubmissionRowsResult{}, fmt.Errorf("submission_id must be positive")
	}

	rows, err := s.store.QueryRows(ctx, args.SubmissionID)
	if err != nil {
		return nil, SubmissionRowsResult{}, fmt.Errorf("failed to query rows: %w", err)
	}

	return nil, SubmissionRowsResult{Rows: rows}, nil
}

// Start starts the MCP server using stdio transport.
func (s *Server) Start(ctx context.Context) error {
	fmt.Fprintf(os.Stderr, "Starting monreview MCP server on stdio...\n")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
