package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"scaffolder/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("not found")

// Items is the SQLite-backed item list used by the reference backend.
type Items struct {
	db  *sql.DB
	now func() time.Time
}

// OpenItems opens (creating if needed) the items database at path.
func OpenItems(ctx context.Context, path string) (*Items, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("open items: missing path")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// Every pooled connection would get its own empty in-memory db.
		db.SetMaxOpenConns(1)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrateItems(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Items{db: db, now: time.Now}, nil
}

func migrateItems(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS items (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at_unixms INTEGER NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("migrate items: %w", err)
		}
	}
	return nil
}

func (s *Items) Close() error { return s.db.Close() }

// Ping is used by the backend health check.
func (s *Items) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

// List returns every item in creation order.
func (s *Items) List(ctx context.Context) ([]model.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, description, created_at_unixms FROM items ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *Items) Get(ctx context.Context, id string) (model.Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, description, created_at_unixms FROM items WHERE id = ?`, id)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, fmt.Errorf("item %s: %w", id, ErrNotFound)
	}
	return it, err
}

func (s *Items) Create(ctx context.Context, in model.NewItem) (model.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Item{}, errors.New("item name is required")
	}
	it := model.Item{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   s.now().UTC().Truncate(time.Millisecond),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO items(id, name, description, created_at_unixms) VALUES(?, ?, ?, ?)`,
		it.ID, it.Name, it.Description, it.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (model.Item, error) {
	var it model.Item
	var ms int64
	if err := sc.Scan(&it.ID, &it.Name, &it.Description, &ms); err != nil {
		return model.Item{}, err
	}
	it.CreatedAt = time.UnixMilli(ms).UTC()
	return it, nil
}
