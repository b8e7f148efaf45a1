package directory_test

import (
	"testing"

	"github.com/ortelius/userdir-backend/directory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_PopulateOnce(t *testing.T) {
	store := directory.NewStore()
	assert.False(t, store.Loaded())

	require.NoError(t, store.Populate(records("Ana Silva", "Bruno Alves")))
	assert.True(t, store.Loaded())
	assert.Equal(t, 2, store.Len())

	err := store.Populate(records("Carla Dias"))
	require.ErrorIs(t, err, directory.ErrAlreadyPopulated)
	assert.Equal(t, []string{"Ana Silva", "Bruno Alves"}, names(store.All()))
}

func TestStore_AllReturnsCopy(t *testing.T) {
	store := directory.NewStore()
	require.NoError(t, store.Populate(records("Ana Silva", "Bruno Alves")))

	all := store.All()
	all[0].DisplayName = "changed"

	assert.Equal(t, "Ana Silva", store.All()[0].DisplayName)
}

func TestStore_PopulateCopiesInput(t *testing.T) {
	input := records("Ana Silva")
	store := directory.NewStore()
	require.NoError(t, store.Populate(input))

	input[0].DisplayName = "changed"
	assert.Equal(t, "Ana Silva", store.All()[0].DisplayName)
}

func TestStore_FilterBeforeLoad(t *testing.T) {
	store := directory.NewStore()

	_, err := store.Filter("ana")
	require.ErrorIs(t, err, directory.ErrNotLoaded)
}
