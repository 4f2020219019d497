// Package store persists note records in an embedded SQLite database at a
// fixed per-user location. One table, one row per note; the style fields
// travel as a single JSON column. All access is synchronous and happens on
// the UI event thread.
package store

import (
	"database/sql"
	"encoding/json"
	"log"
	"strings"

	"github.com/desknotes/desknotes/internal/apperror"
	"github.com/desknotes/desknotes/internal/model"

	// Registers the pure-Go "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS notes (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	status      TEXT NOT NULL DEFAULT 'shown',
	filepath    TEXT,
	position_x  INTEGER NOT NULL DEFAULT 0,
	position_y  INTEGER NOT NULL DEFAULT 0,
	size_width  INTEGER NOT NULL DEFAULT 200,
	size_height INTEGER NOT NULL DEFAULT 150,
	style       TEXT NOT NULL DEFAULT '{}'
);
`

// Store is the durable home of all note records. A single instance is
// constructed at startup and passed to every consumer.
type Store struct {
	db *sql.DB
}

// Open opens (creating and migrating if necessary) the database at path.
// Every failure wraps apperror.ErrStorage so the UI can degrade to a visible
// error state instead of crashing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperror.Storage("open", err)
	}

	// Surface a bad path or permissions immediately, not on first query.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperror.Storage("open", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, apperror.Storage("configure", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, apperror.Storage("migrate", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create inserts a new record and returns the assigned id. The id field of
// the input is ignored. An invalid status falls back to shown.
func (s *Store) Create(n model.Note) (int64, error) {
	if !n.Status.Valid() {
		n.Status = model.StatusShown
	}
	styleJSON, err := marshalStyle(n.Style.Clamped())
	if err != nil {
		return model.UnsavedID, err
	}

	res, err := s.db.Exec(
		`INSERT INTO notes (status, filepath, position_x, position_y, size_width, size_height, style)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.Status.String(), nullablePath(n.FilePath),
		n.Position.X, n.Position.Y, n.Size.Width, n.Size.Height,
		styleJSON,
	)
	if err != nil {
		return model.UnsavedID, apperror.Storage("create note", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.UnsavedID, apperror.Storage("create note", err)
	}
	return id, nil
}

// Get returns the note with the given id, or ErrNotFound. Callers must treat
// a missing row as "degrade the widget", never as "make a new record".
func (s *Store) Get(id int64) (model.Note, error) {
	row := s.db.QueryRow(
		`SELECT id, status, filepath, position_x, position_y, size_width, size_height, style
		 FROM notes WHERE id = ?`, id)

	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return model.Note{ID: model.UnsavedID}, apperror.NotFound(id)
	}
	if err != nil {
		return model.Note{ID: model.UnsavedID}, apperror.Storage("get note", err)
	}
	return n, nil
}

// GetAll returns every note in storage order. Consumers impose their own
// sort if they need one.
func (s *Store) GetAll() ([]model.Note, error) {
	rows, err := s.db.Query(
		`SELECT id, status, filepath, position_x, position_y, size_width, size_height, style
		 FROM notes`)
	if err != nil {
		return nil, apperror.Storage("list notes", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, apperror.Storage("scan note", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("list notes", err)
	}
	return notes, nil
}

// Update writes the full record for n.ID. Zero rows affected is a benign
// race (the row was deleted underneath us) and not an error; the caller's
// copy is simply stale.
func (s *Store) Update(n model.Note) error {
	styleJSON, err := marshalStyle(n.Style.Clamped())
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE notes
		 SET status = ?, filepath = ?, position_x = ?, position_y = ?, size_width = ?, size_height = ?, style = ?
		 WHERE id = ?`,
		n.Status.String(), nullablePath(n.FilePath),
		n.Position.X, n.Position.Y, n.Size.Width, n.Size.Height,
		styleJSON, n.ID,
	)
	if err != nil {
		return apperror.Storage("update note", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		log.Printf("store: update of note %d matched no rows", n.ID)
	}
	return nil
}

// SetStatus changes only the status column. Same zero-rows policy as Update.
func (s *Store) SetStatus(id int64, status model.NoteStatus) error {
	if !status.Valid() {
		return apperror.InvalidInput("status", "unknown status "+status.String())
	}

	res, err := s.db.Exec(`UPDATE notes SET status = ? WHERE id = ?`, status.String(), id)
	if err != nil {
		return apperror.Storage("set status", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		log.Printf("store: status change for note %d matched no rows", id)
	}
	return nil
}

// Delete removes the row. Deleting an id that does not exist is not an
// error, so callers can retry freely. The referenced file is never touched.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id); err != nil {
		return apperror.Storage("delete note", err)
	}
	return nil
}

// AdoptPending claims the oldest pending_placement row, flips it to shown
// and returns it. The second result is false when no row is waiting. The
// handoff is best effort: rows are claimed in id order, first caller wins.
func (s *Store) AdoptPending() (model.Note, bool, error) {
	row := s.db.QueryRow(
		`SELECT id, status, filepath, position_x, position_y, size_width, size_height, style
		 FROM notes WHERE status = ? ORDER BY id LIMIT 1`,
		model.StatusPendingPlacement.String())

	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return model.Note{ID: model.UnsavedID}, false, nil
	}
	if err != nil {
		return model.Note{ID: model.UnsavedID}, false, apperror.Storage("adopt pending", err)
	}

	if err := s.SetStatus(n.ID, model.StatusShown); err != nil {
		return model.Note{ID: model.UnsavedID}, false, err
	}
	n.Status = model.StatusShown
	return n, true, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(sc scanner) (model.Note, error) {
	var (
		n         model.Note
		status    string
		filepath  sql.NullString
		styleJSON string
	)
	err := sc.Scan(&n.ID, &status, &filepath,
		&n.Position.X, &n.Position.Y, &n.Size.Width, &n.Size.Height,
		&styleJSON)
	if err != nil {
		return n, err
	}

	n.Status = model.NoteStatus(status)
	if filepath.Valid {
		n.FilePath = filepath.String
	}
	n.Style = unmarshalStyle(styleJSON)
	return n, nil
}

func marshalStyle(s model.Style) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", apperror.Storage("encode style", err)
	}
	return string(b), nil
}

// unmarshalStyle tolerates corrupt or legacy blobs by falling back to the
// default style; a broken style column must not orphan the whole note.
func unmarshalStyle(raw string) model.Style {
	s := model.DefaultStyle()
	if strings.TrimSpace(raw) == "" {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.Printf("store: unreadable style %q, using defaults: %v", raw, err)
		return model.DefaultStyle()
	}
	return s.Clamped()
}

func nullablePath(path string) any {
	if path == "" {
		return nil
	}
	return path
}
