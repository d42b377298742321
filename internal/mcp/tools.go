// ABOUTME: MCP tool implementations for goal tracking.
// ABOUTME: Provides goal CRUD, daily logging, and analytics tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/TanmayDabhade/grata/internal/models"
)

func (s *Server) registerTools() {
	// add_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a new goal to track daily",
	}, s.handleAddGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List all goals with their progress",
	}, s.handleListGoals)

	// delete_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_goal",
		Description: "Delete a goal and clear its progress logs",
	}, s.handleDeleteGoal)

	// log_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_today",
		Description: "Log today's completion for a goal (idempotent per day)",
	}, s.handleLogToday)

	// goal_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "goal_progress",
		Description: "Get a goal's logged days and completion fraction",
	}, s.handleGoalProgress)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get cross-goal analytics: active/completed counts, average progress, weekly activity",
	}, s.handleGetStats)
}

// Tool input/output types

type addGoalInput struct {
	Title  string `json:"title" jsonschema:"Goal title"`
	Detail string `json:"detail,omitempty" jsonschema:"Optional goal detail"`
}

type goalOutput struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type goalIDInput struct {
	ID string `json:"id" jsonschema:"Goal ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type logTodayOutput struct {
	GoalID      string `json:"goal_id"`
	Day         string `json:"day"`
	DidInsert   bool   `json:"did_insert"`
	LoggedCount int    `json:"logged_count"`
	Message     string `json:"message"`
}

type goalProgressOutput struct {
	GoalID      string  `json:"goal_id"`
	Title       string  `json:"title"`
	LoggedCount int     `json:"logged_count"`
	TargetDays  int     `json:"target_days"`
	Progress    float64 `json:"progress"`
	LoggedToday bool    `json:"logged_today"`
}

type goalListEntry struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Detail      string  `json:"detail,omitempty"`
	DateCreated string  `json:"date_created"`
	LoggedCount int     `json:"logged_count"`
	Progress    float64 `json:"progress"`
}

// Tool handlers

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	if input.Title == "" {
		return nil, goalOutput{}, fmt.Errorf("goal title is required")
	}

	g := models.NewGoal(input.Title)
	if input.Detail != "" {
		g.WithDetail(input.Detail)
	}

	if err := s.repo.CreateGoal(g); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to create goal: %w", err)
	}

	return nil, goalOutput{
		ID:      g.ID.String()[:8],
		Title:   g.Title,
		Message: fmt.Sprintf("Added goal %q (ID: %s)", g.Title, g.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}

	if len(goals) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
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
	return nil, entries, nil
}

func (s *Server) handleDeleteGoal(ctx context.Context, req *mcp.CallToolRequest, input goalIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	g, err := s.repo.GetGoal(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("goal not found: %s", input.ID)
	}

	if err := s.repo.DeleteGoal(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete goal: %w", err)
	}
	if err := s.ledger.ClearAllLogs(g.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("goal deleted but clearing progress failed: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted goal %q and cleared its progress", g.Title),
	}, nil
}

func (s *Server) handleLogToday(ctx context.Context, req *mcp.CallToolRequest, input goalIDInput) (*mcp.CallToolResult, logTodayOutput, error) {
	g, err := s.repo.GetGoal(input.ID)
	if err != nil {
		return nil, logTodayOutput{}, fmt.Errorf("goal not found: %s", input.ID)
	}

	inserted, err := s.ledger.LogToday(g.ID)
	if err != nil {
		return nil, logTodayOutput{}, fmt.Errorf("failed to log progress: %w", err)
	}
	count, err := s.ledger.LoggedCount(g.ID)
	if err != nil {
		return nil, logTodayOutput{}, fmt.Errorf("failed to read progress: %w", err)
	}

	message := fmt.Sprintf("Logged %q for today (%d days total)", g.Title, count)
	if !inserted {
		message = fmt.Sprintf("%q was already logged today (%d days total)", g.Title, count)
	}

	return nil, logTodayOutput{
		GoalID:      g.ID.String()[:8],
		Day:         time.Now().Format("2006-01-02"),
		DidInsert:   inserted,
		LoggedCount: count,
		Message:     message,
	}, nil
}

func (s *Server) handleGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input goalIDInput) (*mcp.CallToolResult, goalProgressOutput, error) {
	g, err := s.repo.GetGoal(input.ID)
	if err != nil {
		return nil, goalProgressOutput{}, fmt.Errorf("goal not found: %s", input.ID)
	}

	count, err := s.ledger.LoggedCount(g.ID)
	if err != nil {
		return nil, goalProgressOutput{}, fmt.Errorf("failed to read progress: %w", err)
	}
	frac, err := s.ledger.Progress(g.ID, s.targetDays)
	if err != nil {
		return nil, goalProgressOutput{}, fmt.Errorf("failed to read progress: %w", err)
	}
	loggedToday, err := s.ledger.IsLoggedToday(g.ID)
	if err != nil {
		return nil, goalProgressOutput{}, fmt.Errorf("failed to read progress: %w", err)
	}

	return nil, goalProgressOutput{
		GoalID:      g.ID.String()[:8],
		Title:       g.Title,
		LoggedCount: count,
		TargetDays:  s.targetDays,
		Progress:    frac,
		LoggedToday: loggedToday,
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	goals, err := s.repo.ListGoals()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}

	stats := s.analytics.Snapshot(goals, s.targetDays, time.Now())
	return nil, stats, nil
}
