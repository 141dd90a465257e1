package store_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vytor/phonicsplay/internal/models"
	"github.com/vytor/phonicsplay/internal/repository/sqlite"
	"github.com/vytor/phonicsplay/internal/store"
	"github.com/vytor/phonicsplay/internal/testutil"
	"github.com/vytor/phonicsplay/internal/testutil/mocks"
)

func TestHiddenWords_LoadMissingIsEmpty(t *testing.T) {
	h := store.NewHiddenWords(store.NewMemoryRepository())

	set := h.Load(context.Background())
	assert.Equal(t, 0, set.Len())
}

func TestHiddenWords_LoadMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, store.KeyHiddenWords, "{not json"))

	set := store.NewHiddenWords(repo).Load(ctx)
	assert.Equal(t, 0, set.Len())
}

func TestHiddenWords_LoadReadErrorIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockStateRepository)
	repo.On("Get", ctx, store.KeyHiddenWords).Return("", false, stderrors.New("disk gone"))

	set := store.NewHiddenWords(repo).Load(ctx)
	assert.Equal(t, 0, set.Len())
	repo.AssertExpectations(t)
}

func TestHiddenWords_HidePersistsAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryRepository()
	h := store.NewHiddenWords(repo)
	h.Load(ctx)

	set, err := h.Hide(ctx, "dog")
	require.NoError(t, err)
	assert.True(t, set.Contains("dog"))

	again, err := h.Hide(ctx, "dog")
	require.NoError(t, err)
	assert.Equal(t, set.Words(), again.Words())

	raw, found, err := repo.Get(ctx, store.KeyHiddenWords)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `["dog"]`, raw)

	// A fresh store sees the persisted value.
	reloaded := store.NewHiddenWords(repo).Load(ctx)
	assert.Equal(t, []models.Word{"dog"}, reloaded.Words())
}

func TestHiddenWords_HideAlreadyHiddenDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockStateRepository)
	repo.On("Get", ctx, store.KeyHiddenWords).Return(`["cat"]`, true, nil)

	h := store.NewHiddenWords(repo)
	h.Load(ctx)

	_, err := h.Hide(ctx, "cat")
	require.NoError(t, err)
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestHiddenWords_HideWriteFailureKeepsMemory(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockStateRepository)
	repo.On("Set", ctx, store.KeyHiddenWords, `["cat"]`).Return(stderrors.New("read-only"))

	h := store.NewHiddenWords(repo)

	set, err := h.Hide(ctx, "cat")
	assert.Error(t, err)
	assert.False(t, set.Contains("cat"))
	assert.False(t, h.Snapshot().Contains("cat"))
	repo.AssertExpectations(t)
}

func TestHiddenWords_ResetDeletesPersistedValue(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryRepository()
	h := store.NewHiddenWords(repo)

	_, err := h.Hide(ctx, "cat")
	require.NoError(t, err)
	before := h.Resets()

	require.NoError(t, h.Reset(ctx))

	_, found, err := repo.Get(ctx, store.KeyHiddenWords)
	require.NoError(t, err)
	assert.False(t, found, "reset removes the key instead of writing an empty list")
	assert.Equal(t, 0, h.Snapshot().Len())
	assert.Equal(t, before+1, h.Resets())
}

func TestHiddenWords_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	defer testutil.MustClose(t, database)
	repo := sqlite.NewStateRepository(database)

	h := store.NewHiddenWords(repo)
	h.Load(ctx)
	_, err := h.Hide(ctx, "cat")
	require.NoError(t, err)
	_, err = h.Hide(ctx, "dog")
	require.NoError(t, err)

	reloaded := store.NewHiddenWords(repo).Load(ctx)
	assert.Equal(t, []models.Word{"cat", "dog"}, reloaded.Words())
}

func TestSettings_DefaultsToFalse(t *testing.T) {
	s := store.NewSettings(store.NewMemoryRepository())

	assert.Equal(t, models.PlaybackSettings{}, s.Load(context.Background()))
}

func TestSettings_UnparsableIsFalse(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryRepository()
	require.NoError(t, repo.Set(ctx, store.KeyAutoRead, "yes please"))
	require.NoError(t, repo.Set(ctx, store.KeySpellBeforeRead, "true"))

	got := store.NewSettings(repo).Load(ctx)
	assert.False(t, got.AutoRead)
	assert.True(t, got.SpellBeforeRead)
}

func TestSettings_WriteThrough(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryRepository()
	s := store.NewSettings(repo)
	s.Load(ctx)

	got, err := s.SetAutoRead(ctx, true)
	require.NoError(t, err)
	assert.True(t, got.AutoRead)
	assert.False(t, got.SpellBeforeRead)

	_, err = s.SetSpellBeforeRead(ctx, true)
	require.NoError(t, err)

	raw, _, _ := repo.Get(ctx, store.KeyAutoRead)
	assert.Equal(t, "true", raw)

	reloaded := store.NewSettings(repo).Load(ctx)
	assert.Equal(t, models.PlaybackSettings{AutoRead: true, SpellBeforeRead: true}, reloaded)
	assert.Equal(t, reloaded, s.Current())
}

func TestSettings_WriteFailureKeepsCurrent(t *testing.T) {
	ctx := context.Background()
	repo := new(mocks.MockStateRepository)
	repo.On("Set", ctx, store.KeyAutoRead, "true").Return(stderrors.New("read-only"))

	s := store.NewSettings(repo)
	got, err := s.SetAutoRead(ctx, true)

	assert.Error(t, err)
	assert.False(t, got.AutoRead)
	repo.AssertExpectations(t)
}
