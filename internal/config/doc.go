package config

// Package config stores user settings. The desktop app keeps them in Fyne
// preferences; the CLI reads an optional TOML file under the user config
// directory.
