package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/inkwell-data/policyscan/internal/extract"
	"github.com/inkwell-data/policyscan/internal/model"
)

// Config holds the full application configuration.
type Config struct {
	Store   StoreConfig   `yaml:"store" mapstructure:"store"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	PDF     PDFConfig     `yaml:"pdf" mapstructure:"pdf"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ExtractConfig configures the extraction engine. Scoring weights are
// deliberately absent: they are fixed constants in the extract package.
type ExtractConfig struct {
	WindowSize int                    `yaml:"window_size" mapstructure:"window_size"`
	MinYear    int                    `yaml:"min_year" mapstructure:"min_year"`
	MaxYear    int                    `yaml:"max_year" mapstructure:"max_year"`
	FieldsFile string                 `yaml:"fields_file" mapstructure:"fields_file"`
	Buckets    model.BucketThresholds `yaml:"buckets" mapstructure:"buckets"`
}

// PDFConfig configures the external text extraction layer.
type PDFConfig struct {
	PdfToTextPath string `yaml:"pdftotext_path" mapstructure:"pdftotext_path"`
}

// ServerConfig configures the extraction HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("POLICYSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "policyscan.db")
	v.SetDefault("extract.window_size", 70)
	v.SetDefault("extract.min_year", 1990)
	v.SetDefault("extract.max_year", 2050)
	v.SetDefault("extract.buckets.high", 0.8)
	v.SetDefault("extract.buckets.medium", 0.6)
	v.SetDefault("pdf.pdftotext_path", "pdftotext")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// EngineConfig copies the extraction tunables into an explicit extract
// config value; the engine never reads ambient state.
func (c *Config) EngineConfig() extract.Config {
	ec := extract.DefaultConfig()
	if c.Extract.WindowSize > 0 {
		ec.WindowSize = c.Extract.WindowSize
	}
	if c.Extract.MinYear > 0 {
		ec.MinYear = c.Extract.MinYear
	}
	if c.Extract.MaxYear > 0 {
		ec.MaxYear = c.Extract.MaxYear
	}
	return ec
}

// FieldRegistry builds the field registry, preferring the configured fields
// file over the built-in defaults.
func (c *Config) FieldRegistry() (*model.FieldRegistry, error) {
	fields := model.DefaultFields()
	if c.Extract.FieldsFile != "" {
		loaded, err := model.LoadFieldsFile(c.Extract.FieldsFile)
		if err != nil {
			return nil, err
		}
		fields = loaded
	}
	return model.NewFieldRegistry(fields)
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
