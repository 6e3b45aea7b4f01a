package config

// Config is the top-level server configuration, corresponding to
// .rasa-nlg.yml.
type Config struct {
	Port          int      `yaml:"port" koanf:"port"`
	DataDir       string   `yaml:"data_dir" koanf:"data_dir"`
	AssetsDir     string   `yaml:"assets_dir" koanf:"assets_dir"`
	AllowAll      bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	AssetPatterns []string `yaml:"asset_patterns" koanf:"asset_patterns"`
}
