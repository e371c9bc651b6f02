package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jcleary/toctidy/internal/toc"
)

// JobStatus represents the state of a formatting job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusFormatting JobStatus = "formatting"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// NewJobID returns a unique job identifier.
func NewJobID() string {
	return uuid.NewString()
}

// Job tracks the state of a single document formatting pass.
type Job struct {
	mu sync.Mutex

	ID       string    `json:"job_id"`
	Filename string    `json:"filename"`
	Status   JobStatus `json:"status"`

	Render toc.RenderConfig `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData   []byte
	outputPath string
	logText    string
	entries    int
	errMsg     string
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs and returns their IDs so callers can drop
// any files still on disk.
func (s *JobStore) Cleanup() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	var expired []string
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
			expired = append(expired, id)
		}
	}
	return expired
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// Fail marks the job failed with an error message.
func (j *Job) Fail(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusFailed
	j.errMsg = msg
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw uploaded bytes for processing. The worker clears
// them once the input is on disk.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// TakeFileData returns the uploaded bytes and releases them.
func (j *Job) TakeFileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	data := j.fileData
	j.fileData = nil
	return data
}

// SetResult records a successful pass.
func (j *Job) SetResult(outputPath, logText string, entries int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = StatusCompleted
	j.outputPath = outputPath
	j.logText = logText
	j.entries = entries
	j.UpdatedAt = time.Now()
}

// OutputPath returns the formatted document's path, empty until completion.
func (j *Job) OutputPath() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.outputPath
}

// LogText returns the processing log captured so far. Present on success
// and, partially, on failure.
func (j *Job) LogText() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.logText
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	Filename  string    `json:"filename"`
	Status    JobStatus `json:"status"`
	Entries   int       `json:"entries_formatted"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return JobSnapshot{
		ID:        j.ID,
		Filename:  j.Filename,
		Status:    j.Status,
		Entries:   j.entries,
		Error:     j.errMsg,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
