// Package almanac implements the category-range remapping engine used by the
// "If You Give A Seed A Fertilizer" puzzle.
//
// An almanac is a chain of named categories (seed, soil, fertilizer, ...,
// location) connected by rule sets. Each rule set maps the integers of one
// category onto the next through piecewise constant offsets; integers that no
// rule covers map to themselves.
//
// Key capabilities:
//   - Point mapping in both directions (Rule, RuleSet)
//   - Range mapping that splits intervals at rule boundaries without ever
//     materialising individual integers (RuleSet.MapRange)
//   - Path inference between two arbitrary categories, forward or reverse (Graph)
//   - Folding points or ranges along a resolved path (Mapper)
//   - Parsing of the almanac text format and static validation of the graph
//
// A Graph is immutable once built and may be shared by concurrent readers.
package almanac
