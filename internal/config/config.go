package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration shared by the
// combiner and analyzer commands.
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
	Report   ReportConfig   `yaml:"report" envconfig:"REPORT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig describes where message exports live and how the combined
// artifact is named.
type InputConfig struct {
	RootDir          string `yaml:"root_dir" envconfig:"ROOT_DIR"`
	CombinedFile     string `yaml:"combined_file" envconfig:"COMBINED_FILE" default:"combined_messages.csv" validate:"required"`
	ProvenanceColumn string `yaml:"provenance_column" envconfig:"PROVENANCE_COLUMN" default:"conversation_id" validate:"required"`
}

// AnalysisConfig names the columns and filter values used by the analyzer.
// These were hard-coded in early versions; they are explicit options now so
// exports from other messaging apps can be analyzed without code changes.
type AnalysisConfig struct {
	TimestampColumn string `yaml:"timestamp_column" envconfig:"TIMESTAMP_COLUMN" default:"Message Date" validate:"required"`
	TextColumn      string `yaml:"text_column" envconfig:"TEXT_COLUMN" default:"Text" validate:"required"`
	DirectionColumn string `yaml:"direction_column" envconfig:"DIRECTION_COLUMN" default:"Type" validate:"required"`
	OutgoingLabel   string `yaml:"outgoing_label" envconfig:"OUTGOING_LABEL" default:"Outgoing" validate:"required"`
	TargetYear      int    `yaml:"target_year" envconfig:"TARGET_YEAR" default:"2024" validate:"gte=1970,lte=9999"`
	TopN            int    `yaml:"top_n" envconfig:"TOP_N" default:"25" validate:"gt=0"`
}

// ReportConfig controls chart rendering and the local report server.
type ReportConfig struct {
	Addr        string `yaml:"addr" envconfig:"ADDR" default:"127.0.0.1:8750" validate:"required"`
	OutputHTML  string `yaml:"output_html" envconfig:"OUTPUT_HTML" default:"emoji_report.html" validate:"required"`
	Title       string `yaml:"title" envconfig:"TITLE" default:"Emoji Wrapped"`
	OpenBrowser bool   `yaml:"open_browser" envconfig:"OPEN_BROWSER" default:"true"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/emojicli.log"`
}

// Load loads configuration from environment variables and an optional
// config.yaml. File values override environment defaults; explicit CLI flags
// are applied by the commands on top of the returned config.
func Load() (*Config, error) {
	var cfg Config

	// Load from environment variables first
	if err := envconfig.Process("EMOJI", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	// Load from config file if exists
	configFile := getConfigFilePath()
	if _, err := os.Stat(configFile); err == nil {
		fileConfig, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(cfg, *fileConfig)
	}

	if cfg.Input.RootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		cfg.Input.RootDir = wd
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays non-zero file values on top of the env-loaded config.
func mergeConfigs(base, file Config) Config {
	merged := base

	if file.Input.RootDir != "" {
		merged.Input.RootDir = file.Input.RootDir
	}
	if file.Input.CombinedFile != "" {
		merged.Input.CombinedFile = file.Input.CombinedFile
	}
	if file.Input.ProvenanceColumn != "" {
		merged.Input.ProvenanceColumn = file.Input.ProvenanceColumn
	}

	if file.Analysis.TimestampColumn != "" {
		merged.Analysis.TimestampColumn = file.Analysis.TimestampColumn
	}
	if file.Analysis.TextColumn != "" {
		merged.Analysis.TextColumn = file.Analysis.TextColumn
	}
	if file.Analysis.DirectionColumn != "" {
		merged.Analysis.DirectionColumn = file.Analysis.DirectionColumn
	}
	if file.Analysis.OutgoingLabel != "" {
		merged.Analysis.OutgoingLabel = file.Analysis.OutgoingLabel
	}
	if file.Analysis.TargetYear != 0 {
		merged.Analysis.TargetYear = file.Analysis.TargetYear
	}
	if file.Analysis.TopN != 0 {
		merged.Analysis.TopN = file.Analysis.TopN
	}

	if file.Report.Addr != "" {
		merged.Report.Addr = file.Report.Addr
	}
	if file.Report.OutputHTML != "" {
		merged.Report.OutputHTML = file.Report.OutputHTML
	}
	if file.Report.Title != "" {
		merged.Report.Title = file.Report.Title
	}

	if file.Logging.Level != "" {
		merged.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		merged.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" {
		merged.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" {
		merged.Logging.FilePath = file.Logging.FilePath
	}

	return merged
}

// Validate checks the configuration against the struct-level rules.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if path := os.Getenv("EMOJI_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.yaml"
}
