// Package config registers the configuration keys and loads them through viper.
package config

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/webify-cli/webify/constant"
	"github.com/webify-cli/webify/filesystem"
	"github.com/webify-cli/webify/where"
)

const fileType = "toml"

// EnvKeyReplacer maps keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup binds defaults, environment variables and the config file.
// A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Webify)
	viper.SetConfigType(fileType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Webify)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}

// File is the path of the config file, whether it exists or not.
func File() string {
	return filepath.Join(where.Config(), constant.Webify+"."+fileType)
}

// Save writes the current settings, creating the file when needed.
func Save() error {
	var notFound viper.ConfigFileNotFoundError
	err := viper.WriteConfig()
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}

// Fields returns registered fields sorted by key.
func Fields() []Field {
	fields := lo.Values(Default)
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}
