package model

// JobStatus represents the status of a media fetch job
type JobStatus string

const (
	// JobStatusPending means the job is queued but not started
	JobStatusPending JobStatus = "Pending"

	// JobStatusDownloading means the fetch is in progress
	JobStatusDownloading JobStatus = "Downloading"

	// JobStatusCompleted means the job finished successfully
	JobStatusCompleted JobStatus = "Completed"

	// JobStatusSkipped means the media was already cached locally
	JobStatusSkipped JobStatus = "Skipped"

	// JobStatusError means the job failed with an error
	JobStatusError JobStatus = "Error"
)

// String returns the string representation of JobStatus
func (js JobStatus) String() string {
	return string(js)
}

// IsActive returns true if the job is in an active state
func (js JobStatus) IsActive() bool {
	return js == JobStatusDownloading
}

// IsFinished returns true if the job is in a finished state (completed, skipped, or error)
func (js JobStatus) IsFinished() bool {
	return js == JobStatusCompleted || js == JobStatusSkipped || js == JobStatusError
}
