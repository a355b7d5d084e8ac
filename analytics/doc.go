// Package analytics derives every number and series the dashboard shows from
// the two loaded tables. All functions are pure: they never mutate their
// inputs and hold no state between calls.
package analytics
