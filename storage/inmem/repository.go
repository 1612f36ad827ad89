package inmemdb

import (
	"sync"

	"github.com/trezcool/matokeo/core/student"
)

// Repository keeps the "persisted" students in memory. Records are copied on every Load and Save
// so callers never share state with the repository.
type Repository struct {
	mutex    sync.RWMutex
	students []*student.Student
	saves    int
	saveErr  error
}

var _ student.Repository = (*Repository)(nil)

func NewRepository(students ...*student.Student) *Repository {
	repo := &Repository{}
	repo.students = cloneAll(students)
	return repo
}

func (repo *Repository) Load() (*student.Store, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()
	return student.NewStore(cloneAll(repo.students)...), nil
}

func (repo *Repository) Save(store *student.Store) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	if repo.saveErr != nil {
		return repo.saveErr
	}
	repo.students = cloneAll(store.All())
	repo.saves++
	return nil
}

// Students returns a copy of the last saved students.
func (repo *Repository) Students() []*student.Student {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()
	return cloneAll(repo.students)
}

// Saves counts the successful calls to Save.
func (repo *Repository) Saves() int {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()
	return repo.saves
}

// FailSaves makes every following Save return err. A nil err restores normal behaviour.
func (repo *Repository) FailSaves(err error) {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()
	repo.saveErr = err
}

func cloneAll(students []*student.Student) []*student.Student {
	clones := make([]*student.Student, 0, len(students))
	for _, stu := range students {
		clones = append(clones, stu.Clone())
	}
	return clones
}
