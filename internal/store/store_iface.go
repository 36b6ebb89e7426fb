package store

import "github.com/rogersnm/studyplan/internal/model"

// Store defines the task persistence contract. LocalStore keeps tasks in a
// JSON file; SQLiteStore keeps them in a SQLite database. Every mutation is
// durable before it returns.
type Store interface {
	AddTask(name string, estimatedHours float64) (*model.Task, error)
	// CompleteTask, ReopenTask and DeleteTask are no-ops for unknown ids.
	CompleteTask(id int) error
	ReopenTask(id int) error
	DeleteTask(id int) error

	GetTask(id int) (*model.Task, error)
	LoadAll() ([]model.Task, error)

	// ImportTasks appends copies of tasks under fresh ids, keeping their
	// completion state and dates. Nothing is written if any task is invalid.
	ImportTasks(tasks []model.Task) ([]model.Task, error)

	Close() error
}

func prepareImport(t model.Task, id int, today model.Date) (model.Task, error) {
	t.ID = id
	if t.CreatedDate.IsZero() {
		t.CreatedDate = today
	}
	if err := t.Validate(); err != nil {
		return model.Task{}, err
	}
	return t, nil
}
