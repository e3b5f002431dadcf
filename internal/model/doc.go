// Package model defines the core data types for the scrip master pipeline.
//
// A Record is one row of the upstream CSV keyed by header column name; column
// order is preserved through to JSON output. CategoryResult and RunSummary
// carry per-category and per-run results.
package model
