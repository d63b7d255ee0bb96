package media

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/playdeck/playdeck/internal/model"
)

// NumWorkers is the default cap on simultaneous media downloads. It keeps
// service APIs from throttling us and the UI from being flooded with
// completion events.
const NumWorkers = 8

// BatchResult summarizes a finished media batch
type BatchResult struct {
	Total     int
	Completed int
	Skipped   int
	Failed    int
}

// Loader downloads batches of game media with bounded concurrency.
// Completions are relayed one at a time to the registered callback, which
// makes the callback safe to drive a single-threaded UI consumer.
type Loader struct {
	cache   *Cache
	workers int

	jobs      map[string]*model.MediaJob
	jobsMutex sync.RWMutex

	onComplete func(*model.MediaJob)
	notifyMu   sync.Mutex
}

// NewLoader creates a loader over the given cache. A non-positive workers
// value falls back to NumWorkers.
func NewLoader(cache *Cache, workers int) *Loader {
	if workers <= 0 {
		workers = NumWorkers
	}
	return &Loader{
		cache:   cache,
		workers: workers,
		jobs:    make(map[string]*model.MediaJob),
	}
}

// SetCompleteCallback sets the callback invoked once per successfully
// fetched item. Failed items are logged, not reported.
func (l *Loader) SetCompleteCallback(callback func(*model.MediaJob)) {
	l.onComplete = callback
}

// GetJob returns a job by ID
func (l *Loader) GetJob(id string) (*model.MediaJob, bool) {
	l.jobsMutex.RLock()
	defer l.jobsMutex.RUnlock()
	job, exists := l.jobs[id]
	return job, exists
}

// GetAllJobs returns all jobs from the current and previous batches
func (l *Loader) GetAllJobs() []*model.MediaJob {
	l.jobsMutex.RLock()
	defer l.jobsMutex.RUnlock()

	jobs := make([]*model.MediaJob, 0, len(l.jobs))
	for _, job := range l.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

// DownloadMedia fetches a batch of media URLs keyed by game slug. At most
// `workers` downloads are in flight at a time. Per-item failures are logged
// and counted but never abort the batch; context cancellation stops new
// fetches from being issued. The call blocks until the batch is drained.
func (l *Loader) DownloadMedia(ctx context.Context, urls map[string]string, mt model.MediaType) BatchResult {
	result := BatchResult{Total: len(urls)}
	if len(urls) == 0 {
		return result
	}

	var resultMu sync.Mutex

	var g errgroup.Group
	g.SetLimit(l.workers)

	for slug, url := range urls {
		if ctx.Err() != nil {
			break
		}

		job := l.addJob(slug, url, mt)

		g.Go(func() error {
			outcome := l.runJob(ctx, job)
			resultMu.Lock()
			switch outcome {
			case model.JobStatusCompleted:
				result.Completed++
			case model.JobStatusSkipped:
				result.Skipped++
			default:
				result.Failed++
			}
			resultMu.Unlock()
			return nil
		})
	}

	g.Wait()
	return result
}

// addJob registers a pending job for the batch
func (l *Loader) addJob(slug, url string, mt model.MediaType) *model.MediaJob {
	job := &model.MediaJob{
		ID:        "job-" + uuid.NewString(),
		Slug:      slug,
		URL:       url,
		Type:      mt,
		Status:    model.JobStatusPending,
		StartedAt: time.Now(),
	}

	l.jobsMutex.Lock()
	l.jobs[job.ID] = job
	l.jobsMutex.Unlock()

	return job
}

// runJob fetches one media item and reports its final status
func (l *Loader) runJob(ctx context.Context, job *model.MediaJob) model.JobStatus {
	// A hit that will not be re-fetched counts as skipped, not completed
	cached := !l.cache.Overwrite() && l.cache.Exists(job.Slug, job.Type)

	l.jobsMutex.Lock()
	job.Status = model.JobStatusDownloading
	l.jobsMutex.Unlock()

	path, err := l.cache.Fetch(ctx, job.Slug, job.URL, job.Type)

	l.jobsMutex.Lock()
	if err != nil {
		job.Status = model.JobStatusError
		job.LastError = err.Error()
	} else if cached {
		job.Status = model.JobStatusSkipped
		job.OutputPath = path
	} else {
		job.Status = model.JobStatusCompleted
		job.OutputPath = path
	}
	job.FinishedAt = time.Now()
	status := job.Status
	l.jobsMutex.Unlock()

	if err != nil {
		log.Printf("media fetch for %q failed: %v", job.Slug, err)
		return status
	}

	l.notifyComplete(job)
	return status
}

// notifyComplete calls the completion callback if set. The mutex serializes
// callbacks so the consumer never sees two completions at once.
func (l *Loader) notifyComplete(job *model.MediaJob) {
	if l.onComplete == nil {
		return
	}
	l.notifyMu.Lock()
	defer l.notifyMu.Unlock()
	l.onComplete(job)
}
