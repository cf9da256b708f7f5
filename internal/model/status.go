package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means the task is in the process of starting
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusDownloading means the download is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusStopping means the task is in the process of stopping
	TaskStatusStopping TaskStatus = "Stopping"

	// TaskStatusStopped means the task was stopped by user
	TaskStatusStopped TaskStatus = "Stopped"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusStarting || ts == TaskStatusDownloading || ts == TaskStatusStopping
}

// IsFinished returns true if the task is in a finished state (completed, stopped, or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusStopped || ts == TaskStatusError
}

// Stage describes which phase of a download a progress event belongs to.
// Events are produced by the extraction library callback and consumed by
// the UI; they are transient and never persisted.
type Stage string

const (
	// StageFetching means the media streams are being downloaded
	StageFetching Stage = "Fetching"

	// StageConverting means post-processing (muxing/MP3 extraction) is running
	StageConverting Stage = "Converting"

	// StageDone means the file has been written to the destination directory
	StageDone Stage = "Done"

	// StageError means the operation terminated with a failure
	StageError Stage = "Error"
)

// String returns the string representation of Stage
func (s Stage) String() string {
	return string(s)
}
