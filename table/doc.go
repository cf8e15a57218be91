// Package table is the tabular container used as the output of every
// flattener and of the vehicle dictionary loader.
//
// A Table wraps a gota DataFrame of uniquely named, equally sized columns.
// Each Column wraps a gota Series of one Kind (Utf8, Int64, Float64 or Bool).
// Missing values are kept as NaN elements, which the package reports as
// nulls.
package table
