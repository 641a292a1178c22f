// Package diagnostic provides structured errors, warnings and notes produced
// while checking puzzle inputs.
//
// Key capabilities:
//   - Coded findings grouped by severity
//   - Subjects naming what a finding is about (a rule set, a category, a day)
//   - Suggestions such as close matches for misspelled names
//   - Folding all errors into a single error value
package diagnostic
