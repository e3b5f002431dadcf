// Package pipeline orchestrates one update run: download the scrip master,
// parse it, apply the category rules, and persist the outputs.
//
// Stages run strictly in sequence and every error is fatal to the run; there
// is no partial-success mode and no rollback of files already written.
package pipeline
