package model

// Package model defines domain data structures used across the app: generation
// tasks read from the workbook and status enums. Structures are designed for
// direct binding in the UI and explicit state transitions.
