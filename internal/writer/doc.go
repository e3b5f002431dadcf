// Package writer persists category results to the filesystem.
//
// Layout, relative to the output root:
//
//	data/<category.dir>/full_tickers.json   matched records, parsed field order
//	data/<category.dir>/tickers.txt         sorted unique symbols, one per line
//	data/<category.dir>/tickers.json        the same symbols as a JSON array
//	data/all/tickers.txt, tickers.json      consolidated cross-category list
//
// Every write fully overwrites the target via temp-file-and-rename.
package writer
