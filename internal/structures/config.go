package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type AdblockConfig struct {
	Policy         string        `yaml:"policy" validate:"required|in:lenient,strict"`
	Mode           string        `yaml:"mode" validate:"required|in:density,redirect"`
	Timeout        time.Duration `yaml:"timeout" validate:"required|min:1"`
	RecheckTimeout time.Duration `yaml:"recheckTimeout" validate:"required|min:1"`
	MaxInlineAds   int           `yaml:"maxInlineAds"`
}

type ViewersConfig struct {
	HeartbeatInterval   time.Duration `yaml:"heartbeatInterval" validate:"required|min:1"`
	BulkRefreshInterval time.Duration `yaml:"bulkRefreshInterval" validate:"required|min:1"`
	MaxBulkSlugs        int           `yaml:"maxBulkSlugs"`
}

type MatchesConfig struct {
	RetentionDays int           `yaml:"retentionDays"`
	CacheTTL      time.Duration `yaml:"cacheTTL"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server        `yaml:"webServer"`
	Logger      LoggerConfig  `yaml:"logger"`
	Adblock     AdblockConfig `yaml:"adblock"`
	Viewers     ViewersConfig `yaml:"viewers"`
	Matches     MatchesConfig `yaml:"matches"`
	Persistence Persistence   `yaml:"persistence"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}
