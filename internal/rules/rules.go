package rules

import (
	"strings"

	"github.com/scripfeed/scrip-tickers/internal/model"
)

// Rule describes one output category of the scrip master.
type Rule struct {
	// Key uniquely identifies the category across the rule set.
	Key string

	// Dir is the output location relative to the data root, in slash form.
	Dir string

	// Suffix is appended to every extracted ticker (exchange marker).
	Suffix string

	// TickerColumn names the column holding the raw ticker value.
	TickerColumn string

	// IncludeInAll marks the category's symbols for the consolidated list.
	IncludeInAll bool

	// Match reports whether a record belongs to the category. A missing
	// column propagates as a *model.SchemaError and fails the whole run.
	Match func(model.Record) (bool, error)
}

// equitySeries are the NSE series codes treated as tradeable equity.
var equitySeries = map[string]bool{
	"EQ": true,
	"BE": true,
	"BZ": true,
	"SM": true,
	"ST": true,
}

// Default returns the shipped rule set in processing order. The set is static
// and must not be mutated at runtime.
func Default() []Rule {
	return []Rule{
		{
			Key:          "nse_equity",
			Dir:          "nse/equity",
			Suffix:       ".NS",
			TickerColumn: "Name",
			IncludeInAll: true,
			Match:        matchNSEEquity,
		},
		{
			Key:          "nse_etf",
			Dir:          "nse/etf",
			Suffix:       ".NS",
			TickerColumn: "Name",
			IncludeInAll: false,
			Match:        matchNSEETF,
		},
		{
			Key:          "bse_equity",
			Dir:          "bse/equity",
			Suffix:       ".BO",
			TickerColumn: "Scripcode",
			IncludeInAll: true,
			Match:        matchBSEEquity,
		},
	}
}

// Predicates short-circuit left to right, so a column is only required from
// records that pass the preceding conditions.

func matchNSEEquity(r model.Record) (bool, error) {
	exch, err := r.Get("Exch")
	if err != nil || exch != "N" {
		return false, err
	}
	exchType, err := r.Get("ExchType")
	if err != nil || exchType != "C" {
		return false, err
	}
	allowed, err := r.Get("AllowedToTrade")
	if err != nil || allowed != "Y" {
		return false, err
	}
	series, err := r.Get("Series")
	if err != nil {
		return false, err
	}
	return equitySeries[series], nil
}

func matchNSEETF(r model.Record) (bool, error) {
	exch, err := r.Get("Exch")
	if err != nil || exch != "N" {
		return false, err
	}
	exchType, err := r.Get("ExchType")
	if err != nil || exchType != "C" {
		return false, err
	}
	// Name is read leniently: a missing Name column means no match rather
	// than schema drift, since the rule only probes it for a substring.
	name, _ := r.Lookup("Name")
	if !strings.Contains(strings.ToUpper(name), "ETF") {
		return false, nil
	}
	allowed, err := r.Get("AllowedToTrade")
	if err != nil {
		return false, err
	}
	return allowed == "Y", nil
}

func matchBSEEquity(r model.Record) (bool, error) {
	exch, err := r.Get("Exch")
	if err != nil || exch != "B" {
		return false, err
	}
	exchType, err := r.Get("ExchType")
	if err != nil || exchType != "C" {
		return false, err
	}
	allowed, err := r.Get("AllowedToTrade")
	if err != nil || allowed != "Y" {
		return false, err
	}
	code, err := r.Get("Scripcode")
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(code, "5") || strings.HasPrefix(code, "2"), nil
}
