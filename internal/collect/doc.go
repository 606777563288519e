// Package collect adds files and folders to an input file list. Folders are
// expanded recursively with a per-folder confirmation, and file names that
// are already listed go through a replace-or-skip confirmation. All questions
// are delegated to a Prompter so the same rules drive the desktop dialogs,
// the terminal and tests.
package collect
