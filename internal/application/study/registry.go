package study

import (
	"sync"

	"studypipe/internal/domain/study"
)

// Registry is the process-wide job status store. Each job id is written only
// by its own pipeline goroutine, but the map itself is shared between all
// pipelines and status pollers, so every access goes through the mutex.
// Entries live for the life of the process; there is no expiry.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]study.JobState
}

// NewRegistry creates an empty job status store.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]study.JobState)}
}

// Set replaces the state stored for a job id.
func (r *Registry) Set(jobID string, state study.JobState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[jobID] = state
}

// Get returns the state for a job id and whether the id is known.
func (r *Registry) Get(jobID string) (study.JobState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, ok := r.jobs[jobID]
	return state, ok
}

// Len reports how many jobs the store currently tracks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}
