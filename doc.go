// Package tablediff compares two tables of string cells & describes how they
// differ. It's intended to back test assertions that check runtime data
// against an expected table
//
// A table is an ordered list of rows, each row an ordered list of cells.
// Tables can be compared two ways:
//
// Diff is position sensitive. It computes an edit script between the rows of
// both tables (by default a minimal one, derived from their longest common
// subsequence) and lays it out along the rows of the "from" table, tagging
// every row as unchanged, inserted or deleted. Changed rows show up as a
// delete followed by an insert.
//
// DiffUnordered treats both tables as multisets of rows, ignoring order
// entirely.
//
// Compare & CompareUnordered wrap both, returning a *MismatchError that
// carries the diff when tables differ. Both directions of a diff can be
// recovered from its rows: dropping inserted rows yields the "from" table,
// dropping deleted rows yields the "to" table. Patch applies a diff to a table
//
// tables must have the same number of columns to be compared, unless the
// "to" table is empty
package tablediff
