// Package filestore persists the student store to a single local file.
// The whole file is rewritten on every save; there is no locking and no atomic replace.
package filestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
)

var errMalformed = errors.New("malformed data file")

type (
	// codec encodes and decodes the list of persisted entries.
	codec interface {
		Marshal(entries []*entry) ([]byte, error)
		Unmarshal(data []byte, entries *[]*entry) error
	}

	// entry is one persisted student. Pointer fields tell a missing key from an empty value.
	entry struct {
		Name       *string        `json:"name" yaml:"name"`
		RollNumber *string        `json:"roll_number" yaml:"roll_number"`
		Results    map[string]int `json:"results" yaml:"results"`
	}

	jsonFormat struct{}
	yamlFormat struct{}

	Repository struct {
		path  string
		codec codec
	}
)

var _ student.Repository = (*Repository)(nil)

// New returns a Repository for path. Files ending in .yaml or .yml are stored as YAML, anything else as JSON.
func New(path string) *Repository {
	var c codec = jsonFormat{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c = yamlFormat{}
	}
	return &Repository{path: path, codec: c}
}

func (repo *Repository) Path() string { return repo.path }

// Load reads the data file. A missing file is the first-run state and yields an empty store.
func (repo *Repository) Load() (*student.Store, error) {
	data, err := os.ReadFile(repo.path)
	if err != nil {
		if os.IsNotExist(err) {
			return student.NewStore(), nil
		}
		return nil, errors.Wrapf(err, "reading %s", repo.path)
	}

	var entries []*entry
	if err = repo.codec.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", repo.path)
	}
	if entries == nil {
		return nil, errors.Wrapf(errMalformed, "parsing %s: no list of students", repo.path)
	}

	store := student.NewStore()
	for i, e := range entries {
		stu, err := e.student()
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %s: entry %d", repo.path, i)
		}
		store.Add(stu)
	}
	return store, nil
}

// student rebuilds the record. Every key is required and name and roll number must not be blank.
func (e *entry) student() (*student.Student, error) {
	switch {
	case e == nil:
		return nil, errors.Wrap(errMalformed, "null entry")
	case e.Name == nil || strings.TrimSpace(*e.Name) == "":
		return nil, errors.Wrap(errMalformed, "missing name")
	case e.RollNumber == nil || strings.TrimSpace(*e.RollNumber) == "":
		return nil, errors.Wrap(errMalformed, "missing roll_number")
	case e.Results == nil:
		return nil, errors.Wrap(errMalformed, "missing results")
	}

	stu := student.New(*e.Name, *e.RollNumber)
	for subject, marks := range e.Results {
		stu.AddResult(subject, marks)
	}
	return stu, nil
}

// Save overwrites the data file with every student in store.
func (repo *Repository) Save(store *student.Store) error {
	students := store.All()
	entries := make([]*entry, 0, len(students))
	for _, stu := range students {
		name, roll := stu.Name, stu.RollNumber
		results := stu.Results
		if results == nil {
			results = map[string]int{}
		}
		entries = append(entries, &entry{Name: &name, RollNumber: &roll, Results: results})
	}

	data, err := repo.codec.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "encoding students")
	}
	if err = os.WriteFile(repo.path, data, 0644); err != nil {
		if os.IsNotExist(err) {
			// the data directory is gone: no later save can succeed
			return core.NewShutdownError(fmt.Sprintf("writing %s: %v", repo.path, err))
		}
		return errors.Wrapf(err, "writing %s", repo.path)
	}
	return nil
}

func (jsonFormat) Marshal(entries []*entry) ([]byte, error) { return json.Marshal(entries) }

func (jsonFormat) Unmarshal(data []byte, entries *[]*entry) error { return json.Unmarshal(data, entries) }

func (yamlFormat) Marshal(entries []*entry) ([]byte, error) { return yaml.Marshal(entries) }

func (yamlFormat) Unmarshal(data []byte, entries *[]*entry) error {
	return yaml.UnmarshalStrict(data, entries)
}
