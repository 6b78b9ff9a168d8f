package sheet

// Package sheet reads and writes the task workbook. One row is one generation
// request; the Status and Result columns are rewritten in place as the batch
// progresses so a crashed run can be resumed from the same file.
