// Package perf times the scoreboard operations against a synthetic load:
// start N matches, update every score once, read the summary K times and
// finish every match.
//
// Each run owns its board for its whole lifetime. RunParallel gives every
// worker a board of its own instead of sharing one.
package perf
