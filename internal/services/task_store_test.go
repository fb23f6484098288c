package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

func TestTaskStore(t *testing.T) {
	s := newTaskStore()

	_, ok := s.get("missing")
	assert.False(t, ok)
	assert.False(t, s.delete("missing"))
	assert.Empty(t, s.list())

	s.put(models.Task{ID: "b", Title: "B"})
	s.put(models.Task{ID: "a", Title: "A"})
	s.put(models.Task{ID: "b", Title: "B2"})

	require.Equal(t, 2, s.count())
	got, ok := s.get("b")
	require.True(t, ok)
	assert.Equal(t, "B2", got.Title)

	list := s.list()
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID, "replace keeps insertion position")
	assert.Equal(t, "a", list[1].ID)

	assert.True(t, s.delete("b"))
	assert.False(t, s.delete("b"))
	assert.Equal(t, 1, s.count())

	s.clear()
	assert.Equal(t, 0, s.count())
	assert.Empty(t, s.list())
}
