// Package config assembles the annogen configuration from flags, environment
// and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/mouse-blink/annogen/internal/adapter"
	"github.com/mouse-blink/annogen/internal/domain/annotation"
	"github.com/mouse-blink/annogen/internal/logging"
)

// Configuration keys shared by flags, environment variables and the config file.
const (
	KeyHeader            = "header"
	KeyOutputPrefix      = "output-prefix"
	KeyInPlace           = "in-place"
	KeyParallel          = "parallel"
	KeyExclude           = "exclude"
	KeyExtensions        = "extensions"
	KeyImplExtensions    = "impl-extensions"
	KeyReports           = "reports"
	KeyStatusType        = "status-type"
	KeyStatusDescription = "status-description"
	KeyLogLevel          = "log-level"
	KeyLogFile           = "log-file"
	KeyFileList          = "file-list"
)

// Defaults.
const (
	DefaultHeader       = "file_header.txt"
	DefaultOutputPrefix = "test_"
	DefaultReports      = ".annogen"
	DefaultLogLevel     = "info"
	EnvPrefix           = "ANNOGEN"
	FileName            = ".annogen"
)

// Config holds the resolved settings of one invocation.
type Config struct {
	Header            string
	OutputPrefix      string
	InPlace           bool
	Parallel          int
	Exclude           []string
	Extensions        []string
	ImplExtensions    []string
	Reports           string
	StatusType        string
	StatusDescription string
	LogLevel          string
	LogFile           string
	FileList          string
}

// New prepares a viper instance with the env prefix, the key defaults and
// the optional config file. An explicit configFile must exist; otherwise a
// missing `.annogen.yaml` in the working directory is ignored.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyHeader, DefaultHeader)
	v.SetDefault(KeyOutputPrefix, DefaultOutputPrefix)
	v.SetDefault(KeyParallel, 1)
	v.SetDefault(KeyReports, DefaultReports)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	if configFile != "" {
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}

		return v, nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return v, nil
}

// FromViper reads every key from v and applies defaults to unset fields.
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		Header:            v.GetString(KeyHeader),
		OutputPrefix:      v.GetString(KeyOutputPrefix),
		InPlace:           v.GetBool(KeyInPlace),
		Parallel:          v.GetInt(KeyParallel),
		Exclude:           v.GetStringSlice(KeyExclude),
		Extensions:        v.GetStringSlice(KeyExtensions),
		ImplExtensions:    v.GetStringSlice(KeyImplExtensions),
		Reports:           v.GetString(KeyReports),
		StatusType:        v.GetString(KeyStatusType),
		StatusDescription: v.GetString(KeyStatusDescription),
		LogLevel:          v.GetString(KeyLogLevel),
		LogFile:           v.GetString(KeyLogFile),
		FileList:          v.GetString(KeyFileList),
	}

	cfg.setDefaults()

	return cfg
}

// setDefaults applies explicit default values to unset fields. An empty
// header is kept: it disables the header check. Parallel is left alone so
// Validate can reject non-positive values.
func (c *Config) setDefaults() {
	if c.OutputPrefix == "" && !c.InPlace {
		c.OutputPrefix = DefaultOutputPrefix
	}

	if len(c.Extensions) == 0 {
		c.Extensions = adapter.DefaultSourceExtensions()
	}

	if len(c.ImplExtensions) == 0 {
		c.ImplExtensions = annotation.DefaultImplExtensions()
	}

	vocab := annotation.DefaultVocabulary()
	if c.StatusType == "" {
		c.StatusType = vocab.StatusType
	}

	if c.StatusDescription == "" {
		c.StatusDescription = vocab.StatusDescription
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks the values a run depends on and returns the first problem found.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.OutputPrefix, `/\`) {
		return fmt.Errorf("output-prefix must be a file name prefix, got %q", c.OutputPrefix)
	}

	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}

	for _, ext := range append(append([]string{}, c.Extensions...), c.ImplExtensions...) {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}

	for _, pattern := range c.Exclude {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	if strings.TrimSpace(c.StatusType) == "" {
		return fmt.Errorf("status-type must not be blank")
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Vocabulary returns the annotation vocabulary with the configured status strings.
func (c *Config) Vocabulary() annotation.Vocabulary {
	vocab := annotation.DefaultVocabulary()
	vocab.StatusType = c.StatusType
	vocab.StatusDescription = c.StatusDescription

	return vocab
}
