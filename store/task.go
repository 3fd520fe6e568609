// Package store holds the client-side reactive state: a local task shadow
// list and a single-slot toast queue. Both are plain constructed objects
// meant to be owned by a composition root and injected, not package-level
// singletons.
package store

import "sync"

// Task is the local shadow record held by TaskStore. It is a simplified,
// disconnected shape, not the server task, and is never persisted.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type taskSub struct {
	id int
	fn func(tasks []Task)
}

// TaskStore is an observable task list. Every mutation is synchronous and
// total; subscribers see each transition in the order the mutations were
// invoked. IDs come from a monotonic counter, so removals never cause
// reuse.
type TaskStore struct {
	mu     sync.Mutex
	tasks  []Task
	nextID int
	subs   []taskSub
	subSeq int
}

// NewTaskStore seeds the store with the two initial records.
func NewTaskStore() *TaskStore {
	s := &TaskStore{nextID: 1}
	s.tasks = []Task{
		{ID: s.takeID(), Title: "Build TaskAI frontend"},
		{ID: s.takeID(), Title: "Connect backend API"},
	}
	return s
}

func (s *TaskStore) takeID() int {
	id := s.nextID
	s.nextID++
	return id
}

// Tasks returns a copy of the current list.
func (s *TaskStore) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn, calls it immediately with the current list, and
// returns a cancel func. After cancel returns, fn is never called again.
func (s *TaskStore) Subscribe(fn func(tasks []Task)) (cancel func()) {
	s.mu.Lock()
	s.subSeq++
	id := s.subSeq
	s.subs = append(s.subs, taskSub{id: id, fn: fn})
	fn(s.snapshotLocked())
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.subs {
			if s.subs[i].id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Add appends a new uncompleted record with a fresh ID and returns it.
func (s *TaskStore) Add(title string) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := Task{ID: s.takeID(), Title: title}
	s.tasks = append(s.tasks, task)
	s.notifyLocked()
	return task
}

// Toggle flips the completion flag of the record matching id. Unknown ids
// are a no-op.
func (s *TaskStore) Toggle(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.notifyLocked()
			return
		}
	}
}

// Remove deletes the record matching id. Unknown ids are a no-op.
func (s *TaskStore) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.notifyLocked()
			return
		}
	}
}

func (s *TaskStore) snapshotLocked() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// notifyLocked runs subscribers under the lock so transitions are observed
// in invocation order. Each subscriber gets its own snapshot.
func (s *TaskStore) notifyLocked() {
	for _, sub := range s.subs {
		sub.fn(s.snapshotLocked())
	}
}
