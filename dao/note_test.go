package dao

import (
	"NoteManager/config"
	"NoteManager/models"
	"NoteManager/pkg/database"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDAO(t *testing.T) *NoteDAO {
	t.Helper()
	db, err := database.Open(&config.Database{Driver: config.DriverSQLite, Path: ":memory:"}, false)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewNoteDAO(db)
}

func TestNoteDAO_CreateAndFind(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	first := &models.Note{Title: "Buy milk"}
	require.NoError(t, d.Create(ctx, first))
	second := &models.Note{Title: "Call mom", Content: "after 6pm"}
	require.NoError(t, d.Create(ctx, second))

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)

	got, err := d.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, *second, *got)

	_, err = d.FindByID(ctx, 42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestNoteDAO_ListAndCount(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	list, err := d.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, d.Create(ctx, &models.Note{Title: title}))
	}

	list, err = d.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Title)
	assert.Equal(t, "c", list[2].Title)

	page, err := d.List(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Title)

	total, err := d.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestNoteDAO_UpdateAndDelete(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	note := &models.Note{Title: "draft", Content: "x"}
	require.NoError(t, d.Create(ctx, note))

	n, err := d.Update(ctx, note.ID, map[string]any{"title": "final"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = d.Update(ctx, note.ID, map[string]any{"title": "final"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "unchanged values still count as matched")

	n, err = d.Update(ctx, 999, map[string]any{"title": "ghost"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	got, err := d.FindByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "x", got.Content)

	n, err = d.Delete(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = d.Delete(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestNoteDAO_IDsNotReused(t *testing.T) {
	d := newTestDAO(t)
	ctx := context.Background()

	a := &models.Note{Title: "a"}
	require.NoError(t, d.Create(ctx, a))
	_, err := d.Delete(ctx, a.ID)
	require.NoError(t, err)

	b := &models.Note{Title: "b"}
	require.NoError(t, d.Create(ctx, b))
	assert.Greater(t, b.ID, a.ID)
}
