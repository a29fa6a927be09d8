// Package migrations embeds the goose schema migrations for every SQL backend.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS
