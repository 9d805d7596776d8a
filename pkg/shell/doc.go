// Package shell runs command lines through a shell and captures their
// combined output.
//
// A Runner blocks until the child exits and its output is drained. A non-zero
// exit status is reported in the result, never as an error: callers classify
// outcomes from the text. Errors are returned only when the process could not
// be started or the context was cancelled while it ran.
//
// Command lines are passed to the shell verbatim. Values interpolated into
// them are not quoted, so they must come from a trusted task file.
package shell
