// Package testutil provides fakes for the runner and logger contracts so
// directive behavior can be tested without spawning processes.
package testutil
