// Package cli implements the interactive terminal client for WIP: a REPL
// that dispatches commands through a page guard, prompting helpers for
// interactive input, and per-command handlers on the App type.
package cli
