// Package automation runs workbook tasks against the generation site.
// Flow drives a single browser session through the submission form,
// Service schedules tasks over one or more sessions and writes the
// outcomes back to the workbook.
package automation
