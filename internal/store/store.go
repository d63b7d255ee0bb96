package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/playdeck/playdeck/internal/model"
)

// Store wraps the SQLite game library
type Store struct {
	db *sql.DB
}

// Open opens (and creates if needed) the library database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=10000")
	if err != nil {
		return nil, fmt.Errorf("failed to open library database: %w", err)
	}

	// SQLite can only handle one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		service TEXT NOT NULL DEFAULT '',
		app_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		slug TEXT NOT NULL,
		runner TEXT NOT NULL DEFAULT '',
		directory TEXT NOT NULL DEFAULT '',
		installed TINYINT(1) NOT NULL DEFAULT 0,
		year INTEGER NOT NULL DEFAULT 0,
		details TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(service, slug)
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// Add inserts a game and fills in its assigned ID
func (s *Store) Add(game *model.Game) error {
	now := time.Now()
	game.CreatedAt = now
	game.UpdatedAt = now

	result, err := s.db.Exec(
		`INSERT INTO games (service, app_id, name, slug, runner, directory, installed, year, details, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		game.Service, game.AppID, game.Name, game.Slug, game.Runner,
		game.Directory, game.Installed, game.Year, game.Details,
		game.CreatedAt, game.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert game %q: %w", game.Slug, err)
	}

	game.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted ID: %w", err)
	}
	return nil
}

// Update rewrites an existing game row
func (s *Store) Update(game *model.Game) error {
	game.UpdatedAt = time.Now()

	result, err := s.db.Exec(
		`UPDATE games SET service = ?, app_id = ?, name = ?, slug = ?, runner = ?,
		 directory = ?, installed = ?, year = ?, details = ?, updated_at = ?
		 WHERE id = ?`,
		game.Service, game.AppID, game.Name, game.Slug, game.Runner,
		game.Directory, game.Installed, game.Year, game.Details,
		game.UpdatedAt, game.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update game %d: %w", game.ID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("game not found: %d", game.ID)
	}
	return nil
}

// Get returns a game by ID
func (s *Store) Get(id int64) (*model.Game, error) {
	row := s.db.QueryRow(selectColumns+` WHERE id = ?`, id)
	return scanGame(row)
}

// GetBySlug returns a game by service and slug
func (s *Store) GetBySlug(service, slug string) (*model.Game, error) {
	row := s.db.QueryRow(selectColumns+` WHERE service = ? AND slug = ?`, service, slug)
	return scanGame(row)
}

// List returns all games ordered by name
func (s *Store) List() ([]*model.Game, error) {
	return s.query(selectColumns + ` ORDER BY name COLLATE NOCASE`)
}

// Search returns games whose name or slug contains the query,
// case-insensitive. An empty query returns everything.
func (s *Store) Search(query string) ([]*model.Game, error) {
	if query == "" {
		return s.List()
	}
	pattern := "%" + query + "%"
	return s.query(
		selectColumns+` WHERE name LIKE ? COLLATE NOCASE OR slug LIKE ? ORDER BY name COLLATE NOCASE`,
		pattern, pattern,
	)
}

// MarkInstalled flags a game as installed in the given directory
func (s *Store) MarkInstalled(id int64, directory string) error {
	result, err := s.db.Exec(
		`UPDATE games SET installed = 1, directory = ?, updated_at = ? WHERE id = ?`,
		directory, time.Now(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark game %d installed: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("game not found: %d", id)
	}
	return nil
}

// Remove deletes a game from the library
func (s *Store) Remove(id int64) error {
	_, err := s.db.Exec(`DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to remove game %d: %w", id, err)
	}
	return nil
}

// MediaURLs returns the slug to icon-URL map for a service, the input the
// media loader consumes. An empty service covers the whole library. Games
// whose details carry no icon URL are skipped.
func (s *Store) MediaURLs(service string) (map[string]string, error) {
	var (
		games []*model.Game
		err   error
	)
	if service == "" {
		games, err = s.List()
	} else {
		games, err = s.query(selectColumns+` WHERE service = ?`, service)
	}
	if err != nil {
		return nil, err
	}

	urls := make(map[string]string)
	for _, game := range games {
		if game.Details == "" {
			continue
		}
		var details struct {
			Icon string `json:"icon"`
		}
		if err := json.Unmarshal([]byte(game.Details), &details); err != nil {
			continue
		}
		if details.Icon != "" {
			urls[game.Slug] = details.Icon
		}
	}
	return urls, nil
}

const selectColumns = `SELECT id, service, app_id, name, slug, runner, directory, installed, year, details, created_at, updated_at FROM games`

func (s *Store) query(query string, args ...any) ([]*model.Game, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("library query failed: %w", err)
	}
	defer rows.Close()

	var games []*model.Game
	for rows.Next() {
		game := &model.Game{}
		if err := rows.Scan(
			&game.ID, &game.Service, &game.AppID, &game.Name, &game.Slug,
			&game.Runner, &game.Directory, &game.Installed, &game.Year,
			&game.Details, &game.CreatedAt, &game.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, game)
	}
	return games, rows.Err()
}

func scanGame(row *sql.Row) (*model.Game, error) {
	game := &model.Game{}
	err := row.Scan(
		&game.ID, &game.Service, &game.AppID, &game.Name, &game.Slug,
		&game.Runner, &game.Directory, &game.Installed, &game.Year,
		&game.Details, &game.CreatedAt, &game.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan game: %w", err)
	}
	return game, nil
}
