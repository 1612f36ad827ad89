package student

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// minSuggestionRatio is the similarity a name must reach to be suggested.
const minSuggestionRatio = .6

type (
	// Repository is the persistence boundary: the whole store is read or written at once.
	Repository interface {
		// Load returns the persisted store, or an empty one if nothing was persisted yet.
		Load() (*Store, error)
		// Save replaces the persisted data with the content of store.
		Save(store *Store) error
	}

	// Store is the ordered collection of all students. Insertion order is preserved, duplicates are allowed.
	Store struct {
		students []*Student
	}
)

func NewStore(students ...*Student) *Store {
	s := &Store{students: make([]*Student, 0, len(students))}
	for _, stu := range students {
		s.Add(stu)
	}
	return s
}

func (s *Store) Add(stu *Student) {
	s.students = append(s.students, stu)
}

// All returns the students in insertion order.
func (s *Store) All() []*Student {
	students := make([]*Student, len(s.students))
	copy(students, s.students)
	return students
}

func (s *Store) Len() int {
	return len(s.students)
}

// FindByName returns the students whose name is exactly `name` (case-sensitive).
func (s *Store) FindByName(name string) []*Student {
	return s.filter(func(stu *Student) bool { return stu.Name == name })
}

// FindByRollNumber returns the students whose roll number is exactly `roll`.
func (s *Store) FindByRollNumber(roll string) []*Student {
	return s.filter(func(stu *Student) bool { return stu.RollNumber == roll })
}

// SearchByName does a case-insensitive substring match on names. An empty query matches nothing.
func (s *Store) SearchByName(query string) []*Student {
	if query == "" {
		return []*Student{}
	}
	query = strings.ToLower(query)
	return s.filter(func(stu *Student) bool { return strings.Contains(strings.ToLower(stu.Name), query) })
}

// Names returns every student name in insertion order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.students))
	for _, stu := range s.students {
		names = append(names, stu.Name)
	}
	return names
}

// Suggest returns the existing name closest to `name`, or "" when nothing is similar enough.
func (s *Store) Suggest(name string) string {
	if name == "" {
		return ""
	}
	var (
		best      string
		bestRatio float64
	)
	query := strings.Split(strings.ToLower(name), "")
	for _, stu := range s.students {
		ratio := difflib.NewMatcher(query, strings.Split(strings.ToLower(stu.Name), "")).Ratio()
		if ratio > bestRatio {
			best, bestRatio = stu.Name, ratio
		}
	}
	if bestRatio < minSuggestionRatio {
		return ""
	}
	return best
}

func (s *Store) filter(match func(*Student) bool) []*Student {
	students := make([]*Student, 0)
	for _, stu := range s.students {
		if match(stu) {
			students = append(students, stu)
		}
	}
	return students
}
