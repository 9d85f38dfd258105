// Package cache implements contree.Cache.
//
//   - Memory keeps values in a concurrent in-process map.
//   - Postgres stores JSON-encoded values in a table, sharing results between
//     processes. Database failures are logged and behave as cache misses.
package cache
