package settings

import (
	"bytes"
	"flag"
	"fmt"
	"gopkg.in/yaml.v2"
	"os"
)

const (
	DefaultPort         = 8080
	DefaultFunctionName = "ProcessGCS"
)

type Config struct {
	IsDebug      bool   `yaml:"debug"`
	Port         int    `yaml:"port"`
	FunctionName string `yaml:"function"`

	configPath string
}

func (config *Config) Address() string {
	return fmt.Sprintf(":%d", config.Port)
}

func (config *Config) ConfigPath() string {
	return config.configPath
}

func DefaultConfig() *Config {
	return &Config{
		IsDebug:      false,
		Port:         DefaultPort,
		FunctionName: DefaultFunctionName,
	}
}

// fileConfig mirrors Config with pointers so that keys missing from the
// file can be told apart from zero values.
type fileConfig struct {
	IsDebug      *bool   `yaml:"debug"`
	Port         *int    `yaml:"port"`
	FunctionName *string `yaml:"function"`
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig

	file, err := os.Open(path)
	if err != nil {
		err := LoadError{path: path, base: err}
		logger.Error(err)
		return fc, err
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(&fc)
	if err != nil {
		err := LoadError{path: path, base: err}
		logger.Error(err)
		return fc, err
	}

	return fc, nil
}

// FromFlags parses args into a Config. When -config names a YAML file its
// values are used for every flag not given explicitly.
func FromFlags(name string, args []string) (*Config, string, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)

	var buf bytes.Buffer
	flags.SetOutput(&buf)

	var cfg Config
	flags.BoolVar(&cfg.IsDebug, "debug", false, "Enable debug logging")
	flags.IntVar(&cfg.Port, "port", DefaultPort, "Port used for HTTP")
	flags.StringVar(&cfg.FunctionName, "function", DefaultFunctionName, "Name of the function served by the handler")
	flags.StringVar(&cfg.configPath, "config", "", "Optional YAML file with configuration")

	err := flags.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	if cfg.configPath == "" {
		return &cfg, buf.String(), nil
	}

	logger.Debugf("Loading configuration from %s ...", cfg.configPath)
	fc, err := loadFile(cfg.configPath)
	if err != nil {
		return nil, buf.String(), err
	}

	explicit := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	if fc.IsDebug != nil && !explicit["debug"] {
		cfg.IsDebug = *fc.IsDebug
	}
	if fc.Port != nil && !explicit["port"] {
		cfg.Port = *fc.Port
	}
	if fc.FunctionName != nil && !explicit["function"] {
		cfg.FunctionName = *fc.FunctionName
	}

	return &cfg, buf.String(), nil
}
