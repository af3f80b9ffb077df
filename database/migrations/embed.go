package migrations

import "embed"

// Postgres holds the schema for the pgx-backed store.
//
//go:embed postgres/*.sql
var Postgres embed.FS

// SQLite holds the schema for the SQLite-backed store.
//
//go:embed sqlite/*.sql
var SQLite embed.FS
