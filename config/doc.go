// Package config handles application configuration loading and validation.
//
// Defaults reproduce the ZTM Poznań GTFS-RT endpoint, so no file is needed.
// An optional YAML file overrides them and is validated using struct tags.
package config
