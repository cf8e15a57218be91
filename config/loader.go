package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "https://www.ztm.poznan.pl/pl/dla-deweloperow/getGtfsRtFile"
	DefaultFileParam = "file"
	DefaultMaxRows   = 10
)

// Default returns the built-in configuration.
func Default() AppConfig {
	return AppConfig{
		Source: SourceConfig{
			BaseURL:   DefaultBaseURL,
			FileParam: DefaultFileParam,
			Resources: ResourcesConfig{
				Feeds:             "feeds.pb",
				TripUpdates:       "trip_updates.pb",
				VehiclePositions:  "vehicle_positions.pb",
				VehicleDictionary: "vehicle_dictionary.csv",
			},
			Delimiter: ",",
		},
		Fetch: FetchConfig{
			UserAgent: "gtfsrt-to-tables/1.0",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Report: ReportConfig{
			MaxRows: DefaultMaxRows,
			Format:  "text",
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (AppConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks struct tags on the whole configuration.
func Validate(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ResourceURLs returns the resource identifiers in fetch order: feeds, trip
// updates, vehicle positions, vehicle dictionary.
func (c AppConfig) ResourceURLs() []string {
	names := []string{
		c.Source.Resources.Feeds,
		c.Source.Resources.TripUpdates,
		c.Source.Resources.VehiclePositions,
		c.Source.Resources.VehicleDictionary,
	}
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = c.Source.resourceURL(name)
	}
	return out
}

func (s SourceConfig) resourceURL(name string) string {
	if s.BaseURL == "" {
		return name
	}
	q := url.Values{}
	q.Set(s.FileParam, name)
	return s.BaseURL + "?" + q.Encode()
}

// Comma returns the dictionary delimiter as a rune.
func (s SourceConfig) Comma() rune {
	if s.Delimiter == "" {
		return ','
	}
	return []rune(s.Delimiter)[0]
}
