package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It hosts one InputForm per input kind, asks folder and replace questions
// through dialogs, and copies the collected files into the working folder.
// All UI strings are localized via Localization.
