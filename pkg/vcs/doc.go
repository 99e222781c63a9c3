// Package vcs discovers changed files in a git worktree.
//
// Formatting a whole repository is wasteful when only a handful of files
// changed. The fmt command's --changed flag uses this package to restrict
// formatting to files the worktree reports as modified, added, renamed or
// untracked.
package vcs
