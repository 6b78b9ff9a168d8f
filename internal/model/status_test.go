package model

import "testing"

func TestTaskStatus_IsActive(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusStarting, true},
		{TaskStatusSubmitting, true},
		{TaskStatusGenerating, true},
		{TaskStatusDownloading, true},
		{TaskStatusCompleted, false},
		{TaskStatusFailed, false},
		{TaskStatusStopped, false},
	}

	for _, test := range tests {
		result := test.status.IsActive()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsActive() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestTaskStatus_IsFinished(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected bool
	}{
		{TaskStatusPending, false},
		{TaskStatusStarting, false},
		{TaskStatusSubmitting, false},
		{TaskStatusGenerating, false},
		{TaskStatusDownloading, false},
		{TaskStatusCompleted, true},
		{TaskStatusFailed, true},
		{TaskStatusStopped, true},
	}

	for _, test := range tests {
		result := test.status.IsFinished()
		if result != test.expected {
			t.Errorf("TaskStatus(%s).IsFinished() = %v, expected %v", test.status, result, test.expected)
		}
	}
}

func TestIsCompletedAlias(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{"Completed", true},
		{"completed", true},
		{"DONE", true},
		{"Success", true},
		{"Hoàn thành", true},
		{"  done  ", true},
		{"", false},
		{"Pending", false},
		{"Failed", false},
		{"Generating", false},
	}

	for _, test := range tests {
		result := IsCompletedAlias(test.raw)
		if result != test.expected {
			t.Errorf("IsCompletedAlias(%q) = %v, expected %v", test.raw, result, test.expected)
		}
	}
}
