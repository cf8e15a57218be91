// Package formatter renders the tables of one run.
//
// This package is organized into:
// - report.go: the Report being rendered
// - text.go: human-readable rendering with shape, dtypes and head/tail rows
// - json.go: JSON serialization
// - csv.go: one CSV file per table
package formatter
