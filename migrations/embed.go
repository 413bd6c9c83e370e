package migrations

import "embed"

// Files holds the forward-only SQLite schema, applied in version order.
//
//go:embed *.sql
var Files embed.FS
