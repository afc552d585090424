// Package config provides configuration management for blob-manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP gateway settings (port, API key)
//   - Storage: S3/MinIO endpoint, credentials, project, and region
//   - Log: Logging level and format
//   - Journal: Optional transfer journal database connection
//
// Defaults come from `default:` struct tags on each partial config, bound
// recursively so that AutomaticEnv picks up every key (STORAGE_ENDPOINT,
// SERVER_PORT, and so on).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Endpoint)
package config
