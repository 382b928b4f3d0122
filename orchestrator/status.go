package orchestrator

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kngsnwn/gigapress/entity"
)

// StatusStore holds one GenerationJob per project. Each job has exactly one
// writer (the generation run that owns it) and any number of readers polling
// status; Get hands out deep copies so readers never observe a torn record.
// Create hands the caller a run token and every mutator requires it back, so
// a run superseded by a restart can no longer touch the replacement record.
type StatusStore struct {
	mu   sync.RWMutex
	jobs map[string]*jobRecord
}

type jobRecord struct {
	run string
	job *entity.GenerationJob
}

func NewStatusStore() *StatusStore {
	return &StatusStore{
		jobs: map[string]*jobRecord{},
	}
}

// Create registers a fresh pending job for the project and returns the run
// token its owner must present on every mutation. A previous job for the
// same project is replaced, restarts supersede history.
func (s *StatusStore) Create(projectID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	run := uuid.NewString()
	s.jobs[projectID] = &jobRecord{
		run: run,
		job: &entity.GenerationJob{
			ProjectID:  projectID,
			Status:     entity.GenerationPending,
			TotalSteps: totalSteps,
			StartedAt:  time.Now(),
		},
	}
	return run
}

// Get returns a snapshot of the job, or ok=false if none exists.
func (s *StatusStore) Get(projectID string) (entity.GenerationJob, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.jobs[projectID]
	if !ok {
		return entity.GenerationJob{}, false
	}
	job := record.job

	snapshot := *job
	snapshot.Messages = append([]string(nil), job.Messages...)
	snapshot.Errors = append([]string(nil), job.Errors...)
	if job.CompletedAt != nil {
		completed := *job.CompletedAt
		snapshot.CompletedAt = &completed
	}
	return snapshot, true
}

func (s *StatusStore) start(projectID, run string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.active(projectID, run); ok {
		job.Status = entity.GenerationInProgress
	}
}

func (s *StatusStore) beginStep(projectID, run, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.active(projectID, run); ok {
		job.CurrentStep = label
	}
}

func (s *StatusStore) completeStep(projectID, run, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.active(projectID, run); ok {
		job.ProgressPercentage += 100.0 / totalSteps
		if message != "" {
			job.Messages = append(job.Messages, message)
		}
	}
}

func (s *StatusStore) appendMessage(projectID, run, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.active(projectID, run); ok {
		job.Messages = append(job.Messages, message)
	}
}

// fail records the error and the terminal state in one critical section so
// readers never see a populated errors list on a non-failed job.
func (s *StatusStore) fail(projectID, run, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.active(projectID, run); ok {
		now := time.Now()
		job.Errors = append(job.Errors, errMsg)
		job.Status = entity.GenerationFailed
		job.CompletedAt = &now
	}
}

// complete marks the job done. Progress reaches 100 only here.
func (s *StatusStore) complete(projectID, run string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if job, ok := s.active(projectID, run); ok {
		now := time.Now()
		job.ProgressPercentage = 100.0
		job.Status = entity.GenerationCompleted
		job.CompletedAt = &now
	}
}

// active returns the job unless it already reached a terminal state or the
// record no longer belongs to the presented run. Terminal records are
// immutable; superseded runs write nowhere. Caller must hold the write lock.
func (s *StatusStore) active(projectID, run string) (*entity.GenerationJob, bool) {
	record, ok := s.jobs[projectID]
	if !ok || record.run != run || record.job.Terminal() {
		return nil, false
	}
	return record.job, true
}
