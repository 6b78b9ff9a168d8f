package platform

// Package platform contains OS/platform integration: application data
// directory layout, filesystem helpers, and OS open/reveal for results.
