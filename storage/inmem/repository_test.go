package inmemdb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/matokeo/core/student"
)

func TestRepository_CopiesRecords(t *testing.T) {
	seed := student.New("Asha", "R1")
	repo := NewRepository(seed)
	seed.AddResult("Math", 10)

	store, err := repo.Load()
	require.NoError(t, err)
	loaded := store.All()[0]
	assert.Empty(t, loaded.Results, "seed mutation leaked into the repository")

	loaded.AddResult("Art", 50)
	assert.Empty(t, repo.Students()[0].Results, "loaded record shares state with the repository")

	require.NoError(t, repo.Save(store))
	assert.Equal(t, map[string]int{"Art": 50}, repo.Students()[0].Results)
	assert.Equal(t, 1, repo.Saves())
}

func TestRepository_FailSaves(t *testing.T) {
	repo := NewRepository()
	boom := errors.New("boom")

	repo.FailSaves(boom)
	assert.Equal(t, boom, repo.Save(student.NewStore(student.New("Asha", "R1"))))
	assert.Empty(t, repo.Students())

	repo.FailSaves(nil)
	require.NoError(t, repo.Save(student.NewStore(student.New("Asha", "R1"))))
	assert.Len(t, repo.Students(), 1)
	assert.Equal(t, 1, repo.Saves())
}
