package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent requests for the same expensive computation. Only one job runs
// for a given key while other callers wait for its result.

import "golang.org/x/sync/singleflight"

// HintGroup deduplicates hint searches keyed by game code and move count
// (e.g. "ABCD1234:12"), so repeated hint requests for an unchanged board
// share one search.
var HintGroup singleflight.Group

// BoardImageGroup deduplicates board image renders keyed by game code, move
// count and cell size.
var BoardImageGroup singleflight.Group
