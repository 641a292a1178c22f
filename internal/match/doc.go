// Package match provides name normalization, Levenshtein distance and
// "did you mean" suggestions for user-supplied names such as almanac
// categories and puzzle names.
//
// Key functions:
//   - Normalize: folds case and separators before comparing names
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
