// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines tables for goals, comments, notifications, and communities.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		detail TEXT,
		date_created DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		goal_id TEXT NOT NULL,
		parent_id TEXT,
		username TEXT NOT NULL,
		avatar_url TEXT,
		body TEXT NOT NULL,
		likes INTEGER NOT NULL DEFAULT 0,
		reported INTEGER NOT NULL DEFAULT 0,
		media_urls TEXT,
		posted_at DATETIME NOT NULL,
		FOREIGN KEY (goal_id) REFERENCES goals(id) ON DELETE CASCADE,
		FOREIGN KEY (parent_id) REFERENCES comments(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		sender TEXT NOT NULL,
		target TEXT NOT NULL,
		icon TEXT NOT NULL,
		message TEXT NOT NULL,
		read INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS communities (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		detail TEXT NOT NULL,
		grp TEXT NOT NULL,
		joined INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_goals_date_created ON goals(date_created DESC);
	CREATE INDEX IF NOT EXISTS idx_comments_goal ON comments(goal_id, posted_at);
	CREATE INDEX IF NOT EXISTS idx_comments_parent ON comments(parent_id);
	CREATE INDEX IF NOT EXISTS idx_notifications_created ON notifications(created_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
