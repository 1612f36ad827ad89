package testutil

import (
	"io/ioutil"
	"log"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	inmemdb "github.com/trezcool/matokeo/storage/inmem"
)

// NewLogger returns a silent, rollbar-disabled logger.
func NewLogger() core.Logger {
	l := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), &core.Config{Env: "TEST"})
	l.Enable(false)
	return l
}

// NewValidator returns a validator with every app rule registered, and its translator.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate, translator := core.NewValidator()
	student.InitValidators(validate, translator)
	return validate, translator
}

// NewService returns a student.Service over an in-memory repository seeded with students.
func NewService(t *testing.T, students ...*student.Student) (*student.Service, *inmemdb.Repository) {
	validate, _ := NewValidator()
	return NewServiceWithValidator(t, validate, students...)
}

func NewServiceWithValidator(
	t *testing.T,
	validate *validator.Validate,
	students ...*student.Student,
) (*student.Service, *inmemdb.Repository) {
	repo := inmemdb.NewRepository(students...)
	svc, err := student.NewService(repo, validate, NewLogger())
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	return svc, repo
}

// NewStudent builds a student with the given subject -> marks results.
func NewStudent(name, roll string, results map[string]int) *student.Student {
	stu := student.New(name, roll)
	for subject, marks := range results {
		stu.AddResult(subject, marks)
	}
	return stu
}

func Marks(m int) *int { return &m }
