// Package migrations embeds the goose SQL migrations so the binaries and the
// integration tests apply the same schema without locating files on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
