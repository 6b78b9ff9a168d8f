package model

import "strings"

// TaskStatus represents the status of a generation task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusStarting means a browser is being prepared for the task
	TaskStatusStarting TaskStatus = "Starting"

	// TaskStatusSubmitting means the prompt and options are being entered
	TaskStatusSubmitting TaskStatus = "Submitting"

	// TaskStatusGenerating means the site is generating the content
	TaskStatusGenerating TaskStatus = "Generating"

	// TaskStatusDownloading means the generated media is being saved
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusFailed means the task failed; Result holds the message
	TaskStatusFailed TaskStatus = "Failed"

	// TaskStatusStopped means processing was stopped before the task ran
	TaskStatusStopped TaskStatus = "Stopped"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	switch ts {
	case TaskStatusStarting, TaskStatusSubmitting, TaskStatusGenerating, TaskStatusDownloading:
		return true
	}
	return false
}

// IsFinished returns true if the task is in a finished state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusFailed || ts == TaskStatusStopped
}

// completedAliases are status cell values that mark a row as already done.
// Hand-edited workbooks use a few spellings, including the Vietnamese one
// written by earlier versions of the tool.
var completedAliases = []string{"completed", "done", "success", "hoàn thành"}

// IsCompletedAlias reports whether a raw status cell value means the row was
// already processed and should normally be skipped on load.
func IsCompletedAlias(raw string) bool {
	raw = strings.TrimSpace(raw)
	for _, alias := range completedAliases {
		if strings.EqualFold(raw, alias) {
			return true
		}
	}
	return false
}
