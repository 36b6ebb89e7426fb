package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rogersnm/studyplan/internal/model"
	"github.com/rs/zerolog/log"
)

// LocalStore implements Store using a single JSON file.
type LocalStore struct {
	Path string
	// Lenient treats a corrupt file as an empty collection instead of failing.
	Lenient bool
	Now     func() time.Time

	mu sync.Mutex
}

// compile-time check
var _ Store = (*LocalStore)(nil)

func NewLocal(path string) *LocalStore {
	return &LocalStore{Path: path, Now: time.Now}
}

// document is the on-disk layout. Files without next_id get one derived
// from the highest stored id.
type document struct {
	NextID int          `json:"next_id"`
	Tasks  []model.Task `json:"tasks"`
}

func (d *document) normalize() {
	if d.Tasks == nil {
		d.Tasks = []model.Task{}
	}
	maxID := 0
	for _, t := range d.Tasks {
		maxID = max(maxID, t.ID)
	}
	if d.NextID <= maxID {
		d.NextID = maxID + 1
	}
}

func (s *LocalStore) AddTask(name string, estimatedHours float64) (*model.Task, error) {
	if err := model.ValidateNew(name, estimatedHours); err != nil {
		return nil, err
	}

	var t model.Task
	err := s.update(func(doc *document) error {
		t = model.Task{
			ID:             doc.NextID,
			Name:           strings.TrimSpace(name),
			EstimatedHours: estimatedHours,
			CreatedDate:    s.today(),
		}
		doc.NextID++
		doc.Tasks = append(doc.Tasks, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Int("id", t.ID).Str("name", t.Name).Float64("hours", t.EstimatedHours).Msg("task added")
	return &t, nil
}

func (s *LocalStore) CompleteTask(id int) error {
	return s.update(func(doc *document) error {
		if i := indexOf(doc.Tasks, id); i >= 0 {
			doc.Tasks[i].Complete(s.today())
			log.Debug().Int("id", id).Msg("task completed")
		}
		return nil
	})
}

func (s *LocalStore) ReopenTask(id int) error {
	return s.update(func(doc *document) error {
		if i := indexOf(doc.Tasks, id); i >= 0 {
			doc.Tasks[i].Reopen()
			log.Debug().Int("id", id).Msg("task reopened")
		}
		return nil
	})
}

func (s *LocalStore) DeleteTask(id int) error {
	return s.update(func(doc *document) error {
		kept := doc.Tasks[:0]
		for _, t := range doc.Tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if removed := len(doc.Tasks) - len(kept); removed > 0 {
			log.Debug().Int("id", id).Int("removed", removed).Msg("task deleted")
		}
		doc.Tasks = kept
		return nil
	})
}

func (s *LocalStore) GetTask(id int) (*model.Task, error) {
	tasks, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if i := indexOf(tasks, id); i >= 0 {
		return &tasks[i], nil
	}
	return nil, fmt.Errorf("%w: #%d", ErrNotFound, id)
}

func (s *LocalStore) LoadAll() ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

func (s *LocalStore) ImportTasks(tasks []model.Task) ([]model.Task, error) {
	var imported []model.Task
	err := s.update(func(doc *document) error {
		today := s.today()
		next := doc.NextID
		for i, t := range tasks {
			prepared, err := prepareImport(t, next, today)
			if err != nil {
				return fmt.Errorf("task %d of %d: %w", i+1, len(tasks), err)
			}
			imported = append(imported, prepared)
			next++
		}
		doc.NextID = next
		doc.Tasks = append(doc.Tasks, imported...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Int("count", len(imported)).Msg("tasks imported")
	return imported, nil
}

func (s *LocalStore) Close() error {
	return nil
}

// update runs a read-modify-write cycle. The file is only written when fn succeeds.
func (s *LocalStore) update(fn func(doc *document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

func (s *LocalStore) read() (*document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &document{NextID: 1, Tasks: []model.Task{}}, nil
		}
		return nil, &IOError{Op: "read", Path: s.Path, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return s.corrupt(err)
	}
	// Duplicate ids are tolerated; older files can contain them.
	for i := range doc.Tasks {
		if err := doc.Tasks[i].Validate(); err != nil {
			return s.corrupt(fmt.Errorf("task %d of %d: %w", i+1, len(doc.Tasks), err))
		}
	}
	doc.normalize()
	return &doc, nil
}

func (s *LocalStore) corrupt(err error) (*document, error) {
	if s.Lenient {
		log.Warn().Err(err).Str("path", s.Path).Msg("task file is corrupt, treating it as empty")
		return &document{NextID: 1, Tasks: []model.Task{}}, nil
	}
	return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.Path, err)
}

func (s *LocalStore) write(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	data = append(data, '\n')
	return writeFileAtomic(s.Path, data, 0644)
}

// writeFileAtomic writes data to a temp file beside path and renames it into
// place, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "create dir", Path: dir, Err: err}
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create temp", Path: path, Err: err}
	}
	tmpName := tmp.Name()

	fail := func(op string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return &IOError{Op: op, Path: path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

func (s *LocalStore) today() model.Date {
	return model.DateOf(clock(s.Now))
}

func clock(now func() time.Time) time.Time {
	if now == nil {
		return time.Now()
	}
	return now()
}

func indexOf(tasks []model.Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
