package config

// Config is the top-level librec configuration.
type Config struct {
	Library   LibraryConfig   `mapstructure:"library" yaml:"library"`
	Recommend RecommendConfig `mapstructure:"recommend" yaml:"recommend"`
}

// LibraryConfig says where the catalog seed lives.
type LibraryConfig struct {
	SeedPath string `mapstructure:"seed_path" yaml:"seed_path"`
}

// RecommendConfig tunes the recommendation engine and its cache.
type RecommendConfig struct {
	Limit         int `mapstructure:"limit" yaml:"limit"`
	CacheCapacity int `mapstructure:"cache_capacity" yaml:"cache_capacity"`
}
