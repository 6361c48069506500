// Package cache provides a bounded, thread-safe memo for results that are
// cheap to keep and tedious to recompute, such as parsed Accept-Language
// headers.
//
// A Memo keeps at most its capacity of entries and evicts the least recently
// used one when full.
//
//	memo := cache.NewMemo[string, string](128)
//	lang := memo.Do(header, func() string {
//		return negotiate(header)
//	})
package cache
