package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kasuboski/tvsort/pkg/format"
	"github.com/kasuboski/tvsort/pkg/quality"
	"github.com/spf13/viper"
)

type Config struct {
	TV          TV            `json:"tv" yaml:"tv" mapstructure:"tv"`
	Storage     Storage       `json:"storage" yaml:"storage" mapstructure:"storage"`
	Logging     Logging       `json:"logging" yaml:"logging" mapstructure:"logging"`
	LockTimeout time.Duration `json:"lockTimeout" yaml:"lockTimeout" mapstructure:"lockTimeout"`
}

// TV configures the library the episodes are sorted into
type TV struct {
	Roots             []string            `json:"roots" yaml:"roots" mapstructure:"roots" validate:"required,min=1,dive,required"`
	IgnoredExtensions []string            `json:"ignoredExtensions" yaml:"ignoredExtensions" mapstructure:"ignoredExtensions"`
	MultiEpisode      MultiEpisode        `json:"multiEpisode" yaml:"multiEpisode" mapstructure:"multiEpisode"`
	Templates         format.Templates    `json:"templates" yaml:"templates" mapstructure:"templates"`
	Aliases           map[string][]string `json:"aliases" yaml:"aliases" mapstructure:"aliases"`
	DirMode           string              `json:"dirMode" yaml:"dirMode" mapstructure:"dirMode" validate:"omitempty,filemode"`
	DefaultQuality    string              `json:"defaultQuality" yaml:"defaultQuality" mapstructure:"defaultQuality" validate:"required,tier"`
}

type MultiEpisode struct {
	// Aggressive deletes files made redundant by a newly placed episode
	Aggressive bool `json:"aggressive" yaml:"aggressive" mapstructure:"aggressive"`
	// Prefer keeps multi-episode archives over the single episodes they contain
	Prefer bool `json:"prefer" yaml:"prefer" mapstructure:"prefer"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath" validate:"required"`
}

type Logging struct {
	File       string `json:"file" yaml:"file" mapstructure:"file"`
	MaxSizeMB  int    `json:"maxSizeMB" yaml:"maxSizeMB" mapstructure:"maxSizeMB" validate:"gte=0"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups" mapstructure:"maxBackups" validate:"gte=0"`
	// SortLog writes the log of a failed sort into the download directory
	SortLog bool `json:"sortLog" yaml:"sortLog" mapstructure:"sortLog"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}

// Validate checks the configuration before any episode is touched
func (c Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("tier", validateTier); err != nil {
		return err
	}
	if err := v.RegisterValidation("filemode", validateFileMode); err != nil {
		return err
	}

	err := v.Struct(c)
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		return fmt.Errorf("invalid configuration: %w", invalid)
	}
	return err
}

// DefaultTier returns the quality used when a release name has no recognizable resolution
func (t TV) DefaultTier() (quality.Tier, error) {
	return quality.Parse(t.DefaultQuality)
}

// Mode returns the permission bits for directories created in the library
func (t TV) Mode() (os.FileMode, error) {
	if t.DirMode == "" {
		return 0o755, nil
	}
	mode, err := strconv.ParseUint(t.DirMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid dirMode %q: %w", t.DirMode, err)
	}
	return os.FileMode(mode) & os.ModePerm, nil
}

func validateTier(fl validator.FieldLevel) bool {
	_, err := quality.Parse(fl.Field().String())
	return err == nil
}

func validateFileMode(fl validator.FieldLevel) bool {
	_, err := strconv.ParseUint(fl.Field().String(), 8, 32)
	return err == nil
}
