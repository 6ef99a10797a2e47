package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".xliffkit"

// FileName is the config file name looked up in the project root.
const FileName = configName + ".yaml"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for xliffkit settings.
const envPrefix = "XLIFFKIT"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// LoadConfig loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, .xliffkit.yaml is searched in rootDir and $HOME.
// A missing config file is not an error; defaults are used.
func LoadConfig(fs afero.Fs, rootDir, configPath string) (*Config, error) {
	viperCfg := viper.New()
	viperCfg.SetFs(fs)

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		if ok, err := afero.Exists(fs, configPath); err != nil || !ok {
			return nil, fmt.Errorf("read config: %s: %w", configPath, os.ErrNotExist)
		}
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(rootDir)

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	if err := viperCfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viperCfg.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("source_lang", DefaultSourceLang)

	viperCfg.SetDefault("node_types.include_patterns", DefaultIncludePatterns())
	viperCfg.SetDefault("node_types.translation_magic_value", DefaultTranslationMagicValue)

	viperCfg.SetDefault("translations.path", DefaultTranslationsPath)
	viperCfg.SetDefault("translations.file_extension", DefaultFileExtension)
	viperCfg.SetDefault("translations.template_file", "")

	viperCfg.SetDefault("packages.paths", DefaultPackagePaths())
}
