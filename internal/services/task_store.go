package services

import (
	"sort"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

type storeEntry struct {
	task models.Task
	seq  uint64
}

// taskStore maps task ids to records. It is not safe for concurrent use;
// taskServiceImpl serializes every access.
type taskStore struct {
	entries map[string]storeEntry
	nextSeq uint64
}

func newTaskStore() *taskStore {
	return &taskStore{
		entries: make(map[string]storeEntry),
	}
}

// put inserts or replaces the record. A replaced record keeps its
// original position in list order.
func (s *taskStore) put(task models.Task) {
	entry, exists := s.entries[task.ID]
	if !exists {
		entry.seq = s.nextSeq
		s.nextSeq++
	}
	entry.task = task
	s.entries[task.ID] = entry
}

func (s *taskStore) get(id string) (models.Task, bool) {
	entry, ok := s.entries[id]
	return entry.task, ok
}

func (s *taskStore) delete(id string) bool {
	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	return true
}

func (s *taskStore) list() []models.Task {
	entries := make([]storeEntry, 0, len(s.entries))
	for _, entry := range s.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	tasks := make([]models.Task, len(entries))
	for i, entry := range entries {
		tasks[i] = entry.task
	}
	return tasks
}

func (s *taskStore) count() int {
	return len(s.entries)
}

func (s *taskStore) clear() {
	s.entries = make(map[string]storeEntry)
}
