// Package config provides configuration management for the MOSB portal.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, site identifier)
//   - Database: MySQL/SQLite connection details
//   - Storage: S3/MinIO credentials and the export bucket
//   - Log: Logging level and format
//   - Scan: batch session capacity and auto-scan interval
//   - History: scan history log capacity
//   - Matching: reconciliation report cache TTL
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
