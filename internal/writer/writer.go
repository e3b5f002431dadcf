package writer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scripfeed/scrip-tickers/internal/model"
	"github.com/scripfeed/scrip-tickers/internal/rules"
)

// ConsolidatedDir is the reserved output directory for the cross-category list.
const ConsolidatedDir = "all"

// WriteError reports a failed filesystem operation.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Writer persists category outputs under <root>/data.
type Writer struct {
	root   string
	logger *slog.Logger
}

// New creates a Writer rooted at the given output directory.
func New(root string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{root: root, logger: logger}
}

// WriteCategories writes the three output files for every rule in the set.
// Category outputs are independent per path, so they are written
// concurrently; the first failure cancels the rest and is returned.
func (w *Writer) WriteCategories(ruleSet []rules.Rule, results map[string]model.CategoryResult) error {
	var g errgroup.Group
	for _, rule := range ruleSet {
		rule := rule
		g.Go(func() error {
			return w.writeCategory(rule, results[rule.Key])
		})
	}
	return g.Wait()
}

// writeCategory writes full_tickers.json, tickers.txt and tickers.json for
// one category.
func (w *Writer) writeCategory(rule rules.Rule, res model.CategoryResult) error {
	dir, err := w.ensureDir(rule.Dir)
	if err != nil {
		return err
	}

	records := res.Records
	if records == nil {
		records = []model.Record{}
	}
	if err := w.writeJSON(filepath.Join(dir, "full_tickers.json"), records); err != nil {
		return err
	}

	if err := w.writeTickers(dir, res.Symbols); err != nil {
		return err
	}

	w.logger.Info("category written",
		"category", rule.Key,
		"dir", dir,
		"records", len(records),
		"symbols", len(res.Symbols),
	)
	return nil
}

// WriteConsolidated writes the cross-category list under data/all.
func (w *Writer) WriteConsolidated(symbols []string) error {
	dir, err := w.ensureDir(ConsolidatedDir)
	if err != nil {
		return err
	}
	if err := w.writeTickers(dir, symbols); err != nil {
		return err
	}

	w.logger.Info("consolidated list written", "dir", dir, "symbols", len(symbols))
	return nil
}

// writeTickers writes the newline-delimited and JSON forms of a symbol list.
func (w *Writer) writeTickers(dir string, symbols []string) error {
	if symbols == nil {
		symbols = []string{}
	}

	text := strings.Join(symbols, "\n") + "\n"
	if err := w.writeFile(filepath.Join(dir, "tickers.txt"), []byte(text)); err != nil {
		return err
	}

	return w.writeJSON(filepath.Join(dir, "tickers.json"), symbols)
}

// ensureDir creates the category directory (and parents) under the data root.
func (w *Writer) ensureDir(rel string) (string, error) {
	dir := filepath.Join(w.root, "data", filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &WriteError{Path: dir, Err: err}
	}
	return dir, nil
}

// writeJSON marshals v as indented JSON and writes it atomically. HTML
// escaping is disabled so names survive round-trips unmangled.
func (w *Writer) writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return w.writeFile(path, buf.Bytes())
}

// writeFile replaces the file at path via a temp file in the same directory
// and a rename, so readers never observe a partially written file.
func (w *Writer) writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tickers-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
