// Package plan reads and writes study plans: markdown files whose YAML
// frontmatter lists tasks to create.
package plan

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rogersnm/studyplan/internal/model"
	"gopkg.in/yaml.v3"
)

type Entry struct {
	Name  string  `yaml:"name"`
	Hours float64 `yaml:"hours"`
}

type Plan struct {
	Tasks []Entry `yaml:"tasks"`
	// Notes is the markdown body after the frontmatter.
	Notes string `yaml:"-"`
}

// Adder is the part of the task store that Import needs.
type Adder interface {
	AddTask(name string, estimatedHours float64) (*model.Task, error)
}

func Parse(r io.Reader) (*Plan, error) {
	var p Plan
	body, err := frontmatter.Parse(r, &p)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}
	p.Notes = strings.TrimSpace(string(body))
	return &p, nil
}

func (p *Plan) Validate() error {
	if len(p.Tasks) == 0 {
		return fmt.Errorf("%w: plan has no tasks", model.ErrInvalidInput)
	}
	for i, e := range p.Tasks {
		if err := model.ValidateNew(e.Name, e.Hours); err != nil {
			return fmt.Errorf("plan entry %d: %w", i+1, err)
		}
	}
	return nil
}

// Import validates every entry, then adds them in order.
func Import(a Adder, p *Plan) ([]*model.Task, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	added := make([]*model.Task, 0, len(p.Tasks))
	for i, e := range p.Tasks {
		t, err := a.AddTask(e.Name, e.Hours)
		if err != nil {
			return added, fmt.Errorf("adding plan entry %d: %w", i+1, err)
		}
		added = append(added, t)
	}
	return added, nil
}

// FromTasks builds a plan from tasks, skipping completed ones unless all is set.
func FromTasks(tasks []model.Task, all bool) *Plan {
	p := &Plan{Tasks: []Entry{}}
	for _, t := range tasks {
		if t.Completed && !all {
			continue
		}
		p.Tasks = append(p.Tasks, Entry{Name: t.Name, Hours: t.EstimatedHours})
	}
	return p
}

// Marshal serializes the plan as YAML frontmatter followed by the notes.
func Marshal(p *Plan) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n")
	if p.Notes != "" {
		buf.WriteString("\n")
		buf.WriteString(p.Notes)
		if !strings.HasSuffix(p.Notes, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}
