// Package scrip downloads the scrip master, the upstream reference dataset
// listing all tradeable securities and their attributes.
//
// The document is a single CSV served over plain HTTP; the client sends a
// fixed browser User-Agent and retries failed downloads with a fixed delay.
package scrip
