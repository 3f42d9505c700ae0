// Package workspace lays out the fixed output directory tree.
//
// The tree is a superset of every generated document's parent directory.
// Materialization is idempotent: directories that already exist are left
// alone and nothing is ever removed.
package workspace
