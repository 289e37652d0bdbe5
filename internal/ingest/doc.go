// Package ingest reads work-item dependency snapshots from CSV exports
// and YAML fixture files into the relation and timeline mappings the
// analysis core consumes.
//
// A malformed or unreadable file is fatal to the run. A single date
// field that fails to parse is not: it degrades to an absent value for
// that field only, with a warning.
package ingest
