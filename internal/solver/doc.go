// Package solver ties puzzle implementations to day numbers and runs them.
//
// Key capabilities:
//   - Registry of days, addressable by number or name, with suggestions for
//     misspelled names
//   - Answer and Report types shared by every puzzle
//   - Runner that solves several days concurrently and times each one
package solver
