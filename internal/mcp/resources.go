// ABOUTME: MCP resource implementations for goal tracking.
// ABOUTME: Provides grata://goals, grata://stats, and grata://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// grata://goals - All goals with progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "grata://goals",
		Name:        "Goals",
		Description: "All goals with logged days and completion fraction",
		MIMEType:    "application/json",
	}, s.handleGoalsResource)

	// grata://stats - Analytics snapshot
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "grata://stats",
		Name:        "Progress Stats",
		Description: "Cross-goal analytics: active/completed counts, average progress, weekly activity",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	// grata://today - Today's log state per goal
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "grata://today",
		Name:        "Today's Log State",
		Description: "Which goals have been logged today and which are still pending",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleGoalsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	entries := make([]goalListEntry, 0, len(goals))
	for _, g := range goals {
		count, err := s.ledger.LoggedCount(g.ID)
		if err != nil {
			count = 0
		}
		frac, err := s.ledger.Progress(g.ID, s.targetDays)
		if err != nil {
			frac = 0
		}
		entry := goalListEntry{
			ID:          g.ID.String()[:8],
			Title:       g.Title,
			DateCreated: g.DateCreated.Format("2006-01-02"),
			LoggedCount: count,
			Progress:    frac,
		}
		if g.Detail != nil {
			entry.Detail = *g.Detail
		}
		entries = append(entries, entry)
	}

	return jsonResource("grata://goals", entries)
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	stats := s.analytics.Snapshot(goals, s.targetDays, time.Now())
	return jsonResource("grata://stats", stats)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	type todayEntry struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		LoggedToday bool   `json:"logged_today"`
	}

	entries := make([]todayEntry, 0, len(goals))
	for _, g := range goals {
		logged, err := s.ledger.IsLoggedToday(g.ID)
		if err != nil {
			logged = false
		}
		entries = append(entries, todayEntry{
			ID:          g.ID.String()[:8],
			Title:       g.Title,
			LoggedToday: logged,
		})
	}

	return jsonResource("grata://today", entries)
}

// jsonResource marshals v and wraps it as a single-content resource result.
func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
