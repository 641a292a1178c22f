// Package inputcache keeps downloaded puzzle inputs so each is fetched once.
//
// Key capabilities:
//   - Store interface with a plain directory backend (day_N.txt files)
//   - SQLite backend holding every input in one database file
//   - Loader that reads through the cache and fetches on a miss
package inputcache
