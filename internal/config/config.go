package config

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Planner    PlannerConfig    `mapstructure:"planner"`
	Embedding  EmbeddingConfig  `mapstructure:"embedding"`
	Clustering ClusteringConfig `mapstructure:"clustering"`
	Export     ExportConfig     `mapstructure:"export"`
	Logger     LoggerConfig     `mapstructure:"logger"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type PlannerConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	APIKey   string `mapstructure:"api_key"`
	Timeout  int    `mapstructure:"timeout"`
}

type EmbeddingConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	Model     string `mapstructure:"model"`
	Dimension int    `mapstructure:"dimension"`
	Timeout   int    `mapstructure:"timeout"`
}

type ClusteringConfig struct {
	Method    string  `mapstructure:"method"`
	Eps       float64 `mapstructure:"eps"`
	MinPoints int     `mapstructure:"min_points"`
}

type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
}

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Manager loads and holds the application configuration
type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}
