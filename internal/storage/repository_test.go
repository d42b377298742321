// ABOUTME: Tests for Repository interface implementation.
// ABOUTME: Verifies CRUD operations for goals, comments, notifications, and communities.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/TanmayDabhade/grata/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "grata.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}

func TestCreateAndGetGoal(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Read every day").WithDetail("20 pages minimum")

	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	// Retrieve by full ID
	got, err := db.GetGoal(g.ID.String())
	if err != nil {
		t.Fatalf("GetGoal failed: %v", err)
	}

	if got.ID != g.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, g.ID)
	}
	if got.Title != g.Title {
		t.Errorf("Title mismatch: got %q, want %q", got.Title, g.Title)
	}
	if got.Detail == nil || *got.Detail != "20 pages minimum" {
		t.Errorf("Detail mismatch: got %v, want '20 pages minimum'", got.Detail)
	}
}

func TestGetGoalByPrefix(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Meditate")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	// Retrieve by 8-char prefix
	prefix := g.ID.String()[:8]
	got, err := db.GetGoal(prefix)
	if err != nil {
		t.Fatalf("GetGoal by prefix failed: %v", err)
	}

	if got.ID != g.ID {
		t.Errorf("ID mismatch: got %v, want %v", got.ID, g.ID)
	}
}

func TestListGoalsSortedByCreationDesc(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	now := time.Now()
	oldest := models.NewGoal("oldest").WithDateCreated(now.AddDate(0, 0, -10))
	middle := models.NewGoal("middle").WithDateCreated(now.AddDate(0, 0, -5))
	newest := models.NewGoal("newest").WithDateCreated(now)

	for _, g := range []*models.Goal{middle, oldest, newest} {
		if err := db.CreateGoal(g); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
	}

	goals, err := db.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 3 {
		t.Fatalf("Expected 3 goals, got %d", len(goals))
	}

	// Newest first
	if goals[0].ID != newest.ID || goals[2].ID != oldest.ID {
		t.Errorf("goals not sorted by date_created DESC: %q, %q, %q",
			goals[0].Title, goals[1].Title, goals[2].Title)
	}
}

func TestDeleteGoal(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Run")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	// Delete by prefix
	if err := db.DeleteGoal(g.ID.String()[:8]); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}

	if _, err := db.GetGoal(g.ID.String()); err == nil {
		t.Error("expected GetGoal to fail after delete")
	}

	// Deleting again reports not found
	if err := db.DeleteGoal(g.ID.String()); err == nil {
		t.Error("expected DeleteGoal of missing goal to fail")
	}
}

func TestDeleteGoalCascadesComments(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Run")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	c := models.NewComment(g.ID, "alice", "Go go go")
	if err := db.CreateComment(c); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	if err := db.DeleteGoal(g.ID.String()); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}

	if _, err := db.GetComment(c.ID.String()); err == nil {
		t.Error("expected comment to cascade on goal delete")
	}
}

func TestCommentsWithReplies(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Run")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	parent := models.NewComment(g.ID, "alice", "Day 10 done")
	parent.PostedAt = time.Now().Add(-time.Hour)
	if err := db.CreateComment(parent); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	reply := models.NewComment(g.ID, "bob", "Nice streak").WithParent(parent.ID)
	if err := db.CreateComment(reply); err != nil {
		t.Fatalf("CreateComment (reply) failed: %v", err)
	}

	comments, err := db.ListComments(g.ID)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("Expected 1 top-level comment, got %d", len(comments))
	}
	if len(comments[0].Replies) != 1 {
		t.Fatalf("Expected 1 reply, got %d", len(comments[0].Replies))
	}
	if comments[0].Replies[0].Username != "bob" {
		t.Errorf("reply Username = %q, want %q", comments[0].Replies[0].Username, "bob")
	}
}

func TestLikeAndReportComment(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Run")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	c := models.NewComment(g.ID, "alice", "Day 10 done")
	if err := db.CreateComment(c); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	liked, err := db.LikeComment(c.ID.String()[:8])
	if err != nil {
		t.Fatalf("LikeComment failed: %v", err)
	}
	if liked.Likes != 1 {
		t.Errorf("Likes = %d, want 1", liked.Likes)
	}

	if err := db.ReportComment(c.ID.String()); err != nil {
		t.Fatalf("ReportComment failed: %v", err)
	}
	got, err := db.GetComment(c.ID.String())
	if err != nil {
		t.Fatalf("GetComment failed: %v", err)
	}
	if !got.Reported {
		t.Error("expected comment to be reported")
	}
}

func TestCommentMediaURLsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	g := models.NewGoal("Run")
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	urls := []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}
	c := models.NewComment(g.ID, "alice", "Photos attached").WithMediaURLs(urls)
	if err := db.CreateComment(c); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	got, err := db.GetComment(c.ID.String())
	if err != nil {
		t.Fatalf("GetComment failed: %v", err)
	}
	if len(got.MediaURLs) != 2 || got.MediaURLs[0] != urls[0] {
		t.Errorf("MediaURLs = %v, want %v", got.MediaURLs, urls)
	}
}

func TestNotifications(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	n1 := models.NewNotification(models.NotificationComment, "alice", "Goal", "bubble", "alice commented")
	n1.CreatedAt = time.Now().Add(-time.Hour)
	n2 := models.NewNotification(models.NotificationLike, "you", "alice", "thumbsup", "You liked alice's comment")

	for _, n := range []*models.Notification{n1, n2} {
		if err := db.CreateNotification(n); err != nil {
			t.Fatalf("CreateNotification failed: %v", err)
		}
	}

	all, err := db.ListNotifications(false, 0)
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 notifications, got %d", len(all))
	}
	// Newest first
	if all[0].ID != n2.ID {
		t.Errorf("Expected newest notification first, got %v", all[0].ID)
	}

	if err := db.MarkNotificationRead(n2.ID.String()[:8]); err != nil {
		t.Fatalf("MarkNotificationRead failed: %v", err)
	}

	unread, err := db.ListNotifications(true, 0)
	if err != nil {
		t.Fatalf("ListNotifications(unread) failed: %v", err)
	}
	if len(unread) != 1 || unread[0].ID != n1.ID {
		t.Errorf("Expected only n1 unread, got %d entries", len(unread))
	}
}

func TestCommunitiesSearchAndJoin(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	fitness := models.NewCommunity("30-Day Fitness Challenge", "Get fit in 30 days.", "Fitness Enthusiasts")
	books := models.NewCommunity("Read 12 Books in a Year", "A book every month.", "Book Lovers")

	for _, c := range []*models.Community{fitness, books} {
		if err := db.CreateCommunity(c); err != nil {
			t.Fatalf("CreateCommunity failed: %v", err)
		}
	}

	// Case-insensitive search across title/detail/group
	found, err := db.ListCommunities("fitness")
	if err != nil {
		t.Fatalf("ListCommunities failed: %v", err)
	}
	if len(found) != 1 || found[0].ID != fitness.ID {
		t.Errorf("search 'fitness' returned %d communities", len(found))
	}

	joined, err := db.SetCommunityJoined(books.ID.String()[:8], true)
	if err != nil {
		t.Fatalf("SetCommunityJoined failed: %v", err)
	}
	if !joined.Joined {
		t.Error("expected community to be joined")
	}

	left, err := db.SetCommunityJoined(books.ID.String(), false)
	if err != nil {
		t.Fatalf("SetCommunityJoined failed: %v", err)
	}
	if left.Joined {
		t.Error("expected community to be left")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	defer src.Close()

	g := models.NewGoal("Run").WithDetail("5k")
	if err := src.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	parent := models.NewComment(g.ID, "alice", "Day 10 done")
	parent.PostedAt = time.Now().Add(-time.Hour)
	if err := src.CreateComment(parent); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	reply := models.NewComment(g.ID, "bob", "Nice").WithParent(parent.ID)
	if err := src.CreateComment(reply); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	n := models.NewNotification(models.NotificationFollow, "bob", "Run", "person", "bob followed goal: Run")
	if err := src.CreateNotification(n); err != nil {
		t.Fatalf("CreateNotification failed: %v", err)
	}
	community := models.NewCommunity("Runners", "Daily runs.", "Fitness")
	if err := src.CreateCommunity(community); err != nil {
		t.Fatalf("CreateCommunity failed: %v", err)
	}

	data, err := src.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if len(data.Goals) != 1 || len(data.Comments) != 2 || len(data.Notifications) != 1 || len(data.Communities) != 1 {
		t.Fatalf("unexpected export shape: %d goals, %d comments, %d notifications, %d communities",
			len(data.Goals), len(data.Comments), len(data.Notifications), len(data.Communities))
	}

	// JSON serialization should succeed
	if _, err := ExportJSON(data); err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}
	if _, err := ExportYAML(data); err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	dst := setupTestDB(t)
	defer dst.Close()

	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	goals, err := dst.ListGoals()
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != g.ID {
		t.Fatalf("imported goals mismatch")
	}
	comments, err := dst.ListComments(g.ID)
	if err != nil {
		t.Fatalf("ListComments failed: %v", err)
	}
	if len(comments) != 1 || len(comments[0].Replies) != 1 {
		t.Errorf("imported comment threading mismatch")
	}
}
