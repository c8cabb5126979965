// Package arbeit holds assets shared by the binaries, such as the embedded
// database migrations.
package arbeit

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
