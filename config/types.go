package config

// ResourcesConfig names the four logical resources on the agency server.
type ResourcesConfig struct {
	Feeds             string `yaml:"feeds" validate:"required"`
	TripUpdates       string `yaml:"tripUpdates" validate:"required"`
	VehiclePositions  string `yaml:"vehiclePositions" validate:"required"`
	VehicleDictionary string `yaml:"vehicleDictionary" validate:"required"`
}

// SourceConfig describes where resources are retrieved from. When BaseURL is
// empty, resource names are used as local file paths.
type SourceConfig struct {
	BaseURL   string          `yaml:"baseURL" validate:"omitempty,url"`
	FileParam string          `yaml:"fileParam" validate:"required_with=BaseURL"`
	Resources ResourcesConfig `yaml:"resources" validate:"required"`
	Delimiter string          `yaml:"delimiter" validate:"omitempty,len=1"`
}

// FetchConfig contains resource fetcher settings
type FetchConfig struct {
	Parallelism int    `yaml:"parallelism" validate:"gte=0,lte=4"`
	UserAgent   string `yaml:"userAgent"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// ReportConfig contains report rendering settings
type ReportConfig struct {
	MaxRows   int    `yaml:"maxRows" validate:"gte=0"`
	Format    string `yaml:"format" validate:"omitempty,oneof=text json"`
	ExportDir string `yaml:"exportDir"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Source  SourceConfig  `yaml:"source" validate:"required"`
	Fetch   FetchConfig   `yaml:"fetch"`
	Logging LoggingConfig `yaml:"logging"`
	Report  ReportConfig  `yaml:"report"`
}
