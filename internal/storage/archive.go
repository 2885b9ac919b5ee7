package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ArchivedChronicle is one rendered chronicle kept for later download.
type ArchivedChronicle struct {
	ID          int64     `db:"id" json:"id"`
	SessionID   string    `db:"session_id" json:"session_id"`
	EmpireName  string    `db:"empire_name" json:"empire_name"`
	Mode        string    `db:"mode" json:"mode"`
	EventCount  int       `db:"event_count" json:"event_count"`
	Filtered    int       `db:"filtered" json:"filtered"`
	Filename    string    `db:"filename" json:"filename"`
	Text        string    `db:"text" json:"text,omitempty"`
	CreatedAt   time.Time `db:"-" json:"created_at"`
	CreatedText string    `db:"created_at" json:"-"`
}

// createdLayout is fixed width so created_at sorts and compares as text.
const createdLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Archive stores rendered chronicles in SQLite.
type Archive struct {
	conn   *sqlx.DB
	logger *slog.Logger
}

// OpenArchive opens or creates the archive database at path.
func OpenArchive(path string, logger *slog.Logger) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create archive dir: %w", err)
		}
	}

	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	// SQLite allows a single writer
	conn.SetMaxOpenConns(1)

	a := &Archive{conn: conn, logger: logger}
	if err := a.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.conn.Close()
}

// Ping checks the database connection.
func (a *Archive) Ping(ctx context.Context) error {
	return a.conn.PingContext(ctx)
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS chronicles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		empire_name TEXT NOT NULL,
		mode TEXT NOT NULL,
		event_count INTEGER NOT NULL,
		filtered INTEGER NOT NULL,
		filename TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_chronicles_created ON chronicles(created_at);
	CREATE INDEX IF NOT EXISTS idx_chronicles_session ON chronicles(session_id);
	`
	_, err := a.conn.Exec(schema)
	return err
}

// Save inserts c and fills in its ID. A zero CreatedAt is set to now.
func (a *Archive) Save(ctx context.Context, c *ArchivedChronicle) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.CreatedText = c.CreatedAt.UTC().Format(createdLayout)

	res, err := a.conn.NamedExecContext(ctx, `
		INSERT INTO chronicles (session_id, empire_name, mode, event_count, filtered, filename, text, created_at)
		VALUES (:session_id, :empire_name, :mode, :event_count, :filtered, :filename, :text, :created_at)`, c)
	if err != nil {
		return fmt.Errorf("insert chronicle: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("chronicle id: %w", err)
	}
	c.ID = id
	return nil
}

// Get returns one chronicle with its text, or nil if there is none.
func (a *Archive) Get(ctx context.Context, id int64) (*ArchivedChronicle, error) {
	var rows []ArchivedChronicle
	if err := a.conn.SelectContext(ctx, &rows, "SELECT * FROM chronicles WHERE id = ?", id); err != nil {
		return nil, fmt.Errorf("get chronicle: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if err := rows[0].parseCreated(); err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// Recent returns the newest limit chronicles, newest first, without text.
// A non-empty sessionID restricts the list to one session.
func (a *Archive) Recent(ctx context.Context, sessionID string, limit int) ([]ArchivedChronicle, error) {
	query := `SELECT id, session_id, empire_name, mode, event_count, filtered, filename, '' AS text, created_at
		FROM chronicles`
	args := []any{}
	if sessionID != "" {
		query += " WHERE session_id = ?"
		args = append(args, sessionID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	var rows []ArchivedChronicle
	if err := a.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("recent chronicles: %w", err)
	}
	for i := range rows {
		if err := rows[i].parseCreated(); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// Prune deletes chronicles created before cutoff and reports how many went.
func (a *Archive) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := a.conn.ExecContext(ctx,
		"DELETE FROM chronicles WHERE created_at < ?",
		cutoff.UTC().Format(createdLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("prune chronicles: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune chronicles: %w", err)
	}
	if n > 0 {
		a.logger.Info("Pruned archived chronicles", "deleted", n, "cutoff", cutoff)
	}
	return n, nil
}

func (c *ArchivedChronicle) parseCreated() error {
	t, err := time.Parse(createdLayout, c.CreatedText)
	if err != nil {
		return fmt.Errorf("chronicle %d has bad created_at %q: %w", c.ID, c.CreatedText, err)
	}
	c.CreatedAt = t
	return nil
}
