package model

// Package model defines the domain data structures used across the app: the
// ordered input file list, its size statistics, and copy tasks with their
// status enums. Structures are designed for direct binding in the UI and
// explicit state transitions.
