// Package cli implements the interactive EcoTrack command-line front end:
// a REPL dispatching to the session and report services, with prompt-based
// input for signup, login, and evidence submission.
package cli
