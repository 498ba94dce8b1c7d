// Package cachestore persists the last-known remote catalog state.
//
// The cache is a single JSON document holding the full remote name list, the
// template bodies fetched so far, and the time of the last refresh. The name
// list is only replaced by an explicit refresh; bodies are merged in lazily as
// templates are requested. Writes go through a temp file plus rename so a
// crash or a concurrent invocation never leaves a half-written cache behind.
package cachestore
