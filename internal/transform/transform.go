// Package transform filters parsed records through the category rule set and
// derives the per-category and consolidated ticker lists.
package transform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/scripfeed/scrip-tickers/internal/model"
	"github.com/scripfeed/scrip-tickers/internal/rules"
)

var quoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// Clean normalizes a raw ticker value: surrounding whitespace is trimmed and
// every single and double quote character removed. Inner whitespace exposed
// by quote removal is kept, matching the original cleaning order.
func Clean(s string) string {
	return quoteStripper.Replace(strings.TrimSpace(s))
}

// Run applies every rule to records, in rule-set order. For each rule it
// filters records (preserving order), extracts and cleans ticker values,
// drops empties, appends the rule suffix, then deduplicates and sorts. The
// second return value is the consolidated list: the sorted union of symbols
// from rules flagged IncludeInAll.
//
// A predicate or extraction failure (schema drift) aborts the whole run; a
// record is never silently skipped.
func Run(records []model.Record, ruleSet []rules.Rule) (map[string]model.CategoryResult, []string, error) {
	results := make(map[string]model.CategoryResult, len(ruleSet))
	var all []string

	for _, rule := range ruleSet {
		var matched []model.Record
		for _, r := range records {
			ok, err := rule.Match(r)
			if err != nil {
				return nil, nil, fmt.Errorf("category %s: %w", rule.Key, err)
			}
			if ok {
				matched = append(matched, r)
			}
		}

		symbols := make([]string, 0, len(matched))
		for _, r := range matched {
			raw, err := r.Get(rule.TickerColumn)
			if err != nil {
				return nil, nil, fmt.Errorf("category %s: %w", rule.Key, err)
			}
			if ticker := Clean(raw); ticker != "" {
				symbols = append(symbols, ticker+rule.Suffix)
			}
		}
		symbols = dedupeSorted(symbols)

		results[rule.Key] = model.CategoryResult{Symbols: symbols, Records: matched}
		if rule.IncludeInAll {
			all = append(all, symbols...)
		}
	}

	return results, dedupeSorted(all), nil
}

// dedupeSorted sorts symbols ascending and removes duplicates. The result is
// never nil so empty categories still serialize as [].
func dedupeSorted(symbols []string) []string {
	if len(symbols) == 0 {
		return []string{}
	}
	slices.Sort(symbols)
	return slices.Compact(symbols)
}
