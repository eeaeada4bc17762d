// Package database handles database connections for the portal.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL connections based on the application's configuration, with a SQLite
// fallback used by tests and single-machine deployments.
//
// # Connect
//
// The Connect function establishes a connection to the database. Feature
// packages own their schema via AutoMigrate; this package only cares about
// connectivity, pooling, and timeouts.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
