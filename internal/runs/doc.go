// Package runs persists analysis run history in a local SQLite database.
package runs
