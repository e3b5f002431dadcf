// Package database implements the optional Postgres run archive.
//
// The archive records what each pipeline run produced: one row per run plus
// one row per (category, symbol) pair. It is write-only from the updater's
// point of view; runs never consult prior archive contents. The filesystem
// outputs remain the primary interface.
package database
