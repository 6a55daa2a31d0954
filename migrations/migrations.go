// Package migrations embeds the numbered SQL schema migrations for each
// supported backend. Files are named NNN_name.sql and applied in order.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
