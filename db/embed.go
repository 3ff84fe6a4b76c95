// Package db holds the ordered SQL migrations for the ledger schema.
package db

import "embed"

// Migrations contains every migrations/NNN_name.sql file
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations holding the files
const MigrationsDir = "migrations"
