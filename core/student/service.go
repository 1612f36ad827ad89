package student

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/matokeo/core"
)

// Service owns the Store for the lifetime of the process and persists it after every change.
// Calls are serialized: each action runs to completion before the next one starts.
type Service struct {
	mu       sync.Mutex
	store    *Store
	repo     Repository
	validate *validator.Validate
	logger   core.Logger
}

// NewService loads the persisted store from repo.
func NewService(repo Repository, validate *validator.Validate, logger core.Logger) (*Service, error) {
	store, err := repo.Load()
	if err != nil {
		return nil, errors.Wrap(err, "loading results")
	}
	return &Service{
		store:    store,
		repo:     repo,
		validate: validate,
		logger:   logger,
	}, nil
}

// AddStudent registers a new student and persists the store.
// Nothing changes when the name or roll number is missing.
func (svc *Service) AddStudent(ns NewStudent) (Summary, error) {
	if err := ns.Validate(svc.validate); err != nil {
		return Summary{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	if len(svc.store.FindByRollNumber(ns.RollNumber)) > 0 {
		return Summary{}, core.NewValidationError(
			ErrRollNumberExists,
			core.FieldError{Field: "roll_number", Error: ErrRollNumberExists.Error()},
		)
	}

	stu := New(ns.Name, ns.RollNumber)
	svc.store.Add(stu)
	if err := svc.save(); err != nil {
		return Summary{}, err
	}

	svc.logger.Info(fmt.Sprintf("Student %s added successfully!", stu.Name), stu)
	return stu.Summary(), nil
}

// AddResult records (or overwrites) a subject's marks for a student and persists the store.
func (svc *Service) AddResult(nr NewResult) (Summary, error) {
	if err := nr.Validate(svc.validate); err != nil {
		return Summary{}, err
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	stu, err := svc.resolve(nr.Name, nr.RollNumber)
	if err != nil {
		var nfErr *NotFoundError
		if errors.As(err, &nfErr) {
			svc.logger.Warn(nfErr.Error())
		}
		return Summary{}, err
	}

	stu.AddResult(nr.Subject, *nr.Marks)
	if err := svc.save(); err != nil {
		return Summary{}, err
	}

	svc.logger.Info(fmt.Sprintf("Result for %s added successfully!", nr.Subject), stu)
	return stu.Summary(), nil
}

// List returns a summary of every student, in insertion order.
func (svc *Service) List() []Summary {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return summarize(svc.store.All())
}

// Search returns a summary of the students whose name contains query (case-insensitive).
func (svc *Service) Search(query string) []Summary {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return summarize(svc.store.SearchByName(core.CleanString(query)))
}

// Names returns every student name, in insertion order.
func (svc *Service) Names() []string {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.store.Names()
}

// resolve finds the student targeted by a result: by roll number when given, else by exact name.
// When both are given they must designate the same student. Several matches are never guessed.
func (svc *Service) resolve(name, roll string) (*Student, error) {
	if roll != "" {
		matches := svc.store.FindByRollNumber(roll)
		if len(matches) == 0 {
			return nil, &NotFoundError{Field: "roll number", Query: roll}
		}
		if name != "" {
			matches = filterByName(matches, name)
			if len(matches) == 0 {
				return nil, &NotFoundError{Field: "name", Query: fmt.Sprintf("%s and roll number %s", name, roll)}
			}
		}
		if len(matches) > 1 {
			return nil, core.NewValidationError(
				ErrAmbiguousRollNumber,
				core.FieldError{Field: "roll_number", Error: ErrAmbiguousRollNumber.Error()},
			)
		}
		return matches[0], nil
	}

	matches := svc.store.FindByName(name)
	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Field: "name", Query: name, Suggestion: svc.store.Suggest(name)}
	case 1:
		return matches[0], nil
	default:
		return nil, core.NewValidationError(
			ErrAmbiguousName,
			core.FieldError{Field: "roll_number", Error: ErrAmbiguousName.Error()},
		)
	}
}

func (svc *Service) save() error {
	if err := svc.repo.Save(svc.store); err != nil {
		svc.logger.Error("saving results", err)
		return errors.Wrap(err, "saving results")
	}
	return nil
}

func filterByName(students []*Student, name string) []*Student {
	res := make([]*Student, 0, len(students))
	for _, stu := range students {
		if stu.Name == name {
			res = append(res, stu)
		}
	}
	return res
}

func summarize(students []*Student) []Summary {
	summaries := make([]Summary, 0, len(students))
	for _, stu := range students {
		summaries = append(summaries, stu.Summary())
	}
	return summaries
}
