package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
)

func newStore() *student.Store {
	asha := student.New("Asha", "R1")
	asha.AddResult("Math", 95)
	asha.AddResult("Art", 70)
	bob := student.New("Bob", "R2")
	carol := student.New("Carol", "R3")
	carol.AddResult("Math", 0)
	return student.NewStore(asha, bob, carol, student.New("Asha", "R1"))
}

func TestRepository_LoadMissingFile(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "student_results.json"))

	store, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestRepository_RoundTrip(t *testing.T) {
	for _, name := range []string{"student_results.json", "student_results.yaml", "student_results.yml", "student_results"} {
		t.Run(name, func(t *testing.T) {
			repo := New(filepath.Join(t.TempDir(), name))
			want := newStore()

			require.NoError(t, repo.Save(want))
			got, err := repo.Load()
			require.NoError(t, err)

			require.Equal(t, want.Len(), got.Len())
			wantAll, gotAll := want.All(), got.All()
			for i := range wantAll {
				assert.Equal(t, wantAll[i].Name, gotAll[i].Name)
				assert.Equal(t, wantAll[i].RollNumber, gotAll[i].RollNumber)
				assert.Equal(t, wantAll[i].Results, gotAll[i].Results)
			}
		})
	}
}

func TestRepository_SaveOverwrites(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "student_results.json"))

	require.NoError(t, repo.Save(newStore()))
	require.NoError(t, repo.Save(student.NewStore(student.New("Zed", "R9"))))

	store, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())
	assert.Equal(t, "Zed", store.All()[0].Name)
}

func TestRepository_JSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "student_results.json")
	stu := student.New("Asha", "R1")
	stu.AddResult("Math", 95)
	require.NoError(t, New(path).Save(student.NewStore(stu, student.New("Bob", "R2"))))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"name": "Asha", "roll_number": "R1", "results": {"Math": 95}}, {"name": "Bob", "roll_number": "R2", "results": {}}]`,
		string(data),
	)
}

func TestRepository_LoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "student_results.json")
	content := `[{"name": "Asha", "roll_number": "R1", "results": {"Math": 80, "Art": 60}}, {"name": "Bob", "roll_number": "R2", "results": {}}]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store, err := New(path).Load()
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	asha := store.All()[0]
	assert.Equal(t, 140, asha.TotalMarks())
	assert.Equal(t, student.GradeB, asha.Grade())
	assert.NotNil(t, store.All()[1].Results)
}

func TestRepository_LoadMalformed(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		content      string
		missingField bool
	}{
		{name: "truncated json", file: "data.json", content: `[{"name": "Asha", "roll_`},
		{name: "json object", file: "data.json", content: `{"name": "Asha"}`},
		{name: "empty json", file: "data.json", content: ``},
		{name: "wrong marks type", file: "data.json", content: `[{"name": "Asha", "roll_number": "R1", "results": {"Math": "A"}}]`},
		{name: "yaml mapping", file: "data.yaml", content: "name: Asha\n"},
		{name: "yaml unknown field", file: "data.yaml", content: "- name: Asha\n  class: 3\n"},
		{name: "json null", file: "data.json", content: `null`, missingField: true},
		{name: "null entry", file: "data.json", content: `[null]`, missingField: true},
		{name: "empty entry", file: "data.json", content: `[{}]`, missingField: true},
		{name: "missing roll number", file: "data.json", content: `[{"name": "A", "results": {}}]`, missingField: true},
		{name: "missing name", file: "data.json", content: `[{"roll_number": "R1", "results": {"Math": 80}}]`, missingField: true},
		{name: "missing results", file: "data.json", content: `[{"name": "Asha", "roll_number": "R1"}]`, missingField: true},
		{name: "null results", file: "data.json", content: `[{"name": "Asha", "roll_number": "R1", "results": null}]`, missingField: true},
		{name: "blank roll number", file: "data.json", content: `[{"name": "Asha", "roll_number": " ", "results": {}}]`, missingField: true},
		{name: "second entry broken", file: "data.json", content: `[{"name": "Asha", "roll_number": "R1", "results": {}}, {"name": "Bob"}]`, missingField: true},
		{name: "empty yaml", file: "data.yaml", content: ``, missingField: true},
		{name: "yaml null entry", file: "data.yaml", content: "- ~\n", missingField: true},
		{name: "yaml missing results", file: "data.yaml", content: "- name: Asha\n  roll_number: R1\n", missingField: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			store, err := New(path).Load()
			require.Error(t, err)
			assert.Nil(t, store)
			if tt.missingField {
				assert.Equal(t, errMalformed, errors.Cause(err))
			}
		})
	}
}

func TestRepository_LoadEmptyList(t *testing.T) {
	for _, tt := range []struct{ file, content string }{
		{file: "data.json", content: `[]`},
		{file: "data.yaml", content: "[]\n"},
	} {
		path := filepath.Join(t.TempDir(), tt.file)
		require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

		store, err := New(path).Load()
		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())
	}
}

func TestRepository_SaveError(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "missing-dir", "student_results.json"))
	err := repo.Save(newStore())
	require.Error(t, err)
	assert.True(t, core.IsShutdown(err), "a vanished data directory should stop the app")

	// any other write failure is a plain error
	dir := t.TempDir()
	repo = New(dir) // a directory cannot be written as a file
	err = repo.Save(newStore())
	require.Error(t, err)
	assert.False(t, core.IsShutdown(err))
}
