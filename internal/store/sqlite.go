package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rogersnm/studyplan/internal/db"
	"github.com/rogersnm/studyplan/internal/model"
	"github.com/rs/zerolog/log"
)

// SQLiteStore implements Store on a SQLite database. Ids come from
// AUTOINCREMENT and are never reused.
type SQLiteStore struct {
	Now func() time.Time

	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, &IOError{Op: "create dir", Path: filepath.Dir(path), Err: err}
	}
	conn, err := db.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return &SQLiteStore{Now: time.Now, db: conn, path: path}, nil
}

const taskColumns = `id, name, estimated_hours, completed, created_date, completed_date`

func (s *SQLiteStore) AddTask(name string, estimatedHours float64) (*model.Task, error) {
	if err := model.ValidateNew(name, estimatedHours); err != nil {
		return nil, err
	}
	t := model.Task{
		Name:           strings.TrimSpace(name),
		EstimatedHours: estimatedHours,
		CreatedDate:    s.today(),
	}
	id, err := insertTask(s.db, t)
	if err != nil {
		return nil, s.ioErr("insert task", err)
	}
	t.ID = id
	log.Debug().Int("id", t.ID).Str("name", t.Name).Float64("hours", t.EstimatedHours).Msg("task added")
	return &t, nil
}

func (s *SQLiteStore) CompleteTask(id int) error {
	_, err := s.db.Exec(`UPDATE tasks SET completed = 1, completed_date = ? WHERE id = ?`, s.today().String(), id)
	if err != nil {
		return s.ioErr("complete task", err)
	}
	return nil
}

func (s *SQLiteStore) ReopenTask(id int) error {
	_, err := s.db.Exec(`UPDATE tasks SET completed = 0, completed_date = NULL WHERE id = ?`, id)
	if err != nil {
		return s.ioErr("reopen task", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteTask(id int) error {
	if _, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id); err != nil {
		return s.ioErr("delete task", err)
	}
	return nil
}

func (s *SQLiteStore) GetTask(id int) (*model.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: #%d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return &t, nil
}

func (s *SQLiteStore) LoadAll() ([]model.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY id`)
	if err != nil {
		return nil, s.ioErr("list tasks", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, s.ioErr("list tasks", err)
	}
	return tasks, nil
}

func (s *SQLiteStore) ImportTasks(tasks []model.Task) ([]model.Task, error) {
	today := s.today()
	prepared := make([]model.Task, 0, len(tasks))
	for i, t := range tasks {
		// id 1 satisfies Validate; the real id comes from the insert
		p, err := prepareImport(t, 1, today)
		if err != nil {
			return nil, fmt.Errorf("task %d of %d: %w", i+1, len(tasks), err)
		}
		prepared = append(prepared, p)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, s.ioErr("begin import", err)
	}
	for i := range prepared {
		id, err := insertTask(tx, prepared[i])
		if err != nil {
			_ = tx.Rollback()
			return nil, s.ioErr("import task", err)
		}
		prepared[i].ID = id
	}
	if err := tx.Commit(); err != nil {
		return nil, s.ioErr("commit import", err)
	}
	log.Debug().Int("count", len(prepared)).Msg("tasks imported")
	return prepared, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) today() model.Date {
	return model.DateOf(clock(s.Now))
}

func (s *SQLiteStore) ioErr(op string, err error) error {
	return &IOError{Op: op, Path: s.path, Err: err}
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func insertTask(e execer, t model.Task) (int, error) {
	var completedDate any
	if t.CompletedDate != nil {
		completedDate = t.CompletedDate.String()
	}
	res, err := e.Exec(`INSERT INTO tasks(name, estimated_hours, completed, created_date, completed_date)
		VALUES(?, ?, ?, ?, ?)`, t.Name, t.EstimatedHours, t.Completed, t.CreatedDate.String(), completedDate)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read task id: %w", err)
	}
	return int(id), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(sc scanner) (model.Task, error) {
	var (
		t             model.Task
		createdDate   string
		completedDate sql.NullString
	)
	if err := sc.Scan(&t.ID, &t.Name, &t.EstimatedHours, &t.Completed, &createdDate, &completedDate); err != nil {
		return model.Task{}, err
	}
	created, err := model.ParseDate(createdDate)
	if err != nil {
		return model.Task{}, err
	}
	t.CreatedDate = created
	if completedDate.Valid {
		d, err := model.ParseDate(completedDate.String)
		if err != nil {
			return model.Task{}, err
		}
		t.CompletedDate = &d
	}
	return t, nil
}
