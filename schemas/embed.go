// Package schemas embeds the SQL files that create the progress tables.
package schemas

import "embed"

// Migrations holds the DDL applied by the migrate command, ordered by file name.
//
//go:embed migrations/*.sql
var Migrations embed.FS
