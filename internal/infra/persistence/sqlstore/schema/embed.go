// Package schema holds the table definitions for each supported SQL dialect.
package schema

import "embed"

// FS contains one <dialect>.sql file per supported driver.
//
//go:embed *.sql
var FS embed.FS
