// Package rules defines the static category rule set applied to the scrip
// master: exchange-listed NSE equity, NSE ETFs, and BSE equity.
//
// Rules are plain data plus a predicate function; ordering is significant and
// fixed. Predicates fail loudly on absent columns so upstream schema drift
// aborts the run instead of silently mis-filtering.
package rules
