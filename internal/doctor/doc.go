// Package doctor runs one-shot diagnostics for the dashboard: the config
// loads, the SSH agent and connection work, and each probe returns output
// the sampling loop can use. Checks never panic on a broken setup; every
// problem becomes a CheckResult with a suggestion.
package doctor
