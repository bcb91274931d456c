package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/taskdock/taskd/types"
)

const (
	configName = ".taskd"
	envPrefix  = "TASKD"
)

// validate is a single validator instance; it caches struct info.
var validate = validator.New()

// InitConfig reads in the config file and ENV variables if set.
func InitConfig() {
	viper.SetEnvPrefix(envPrefix) // e.g., TASKD_SERVER_PORT
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cfgFileFlag := viper.GetString("config"); cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")  // ./.taskd.yaml
		viper.AddConfigPath(home) // $HOME/.taskd.yaml
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	viper.SetDefault("server.host", "")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("data.file", "tasks.json")
}

// GetConfig unmarshals and validates the effective configuration.
func GetConfig() (types.AppConfig, error) {
	var config types.AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		return types.AppConfig{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate.Struct(&config); err != nil {
		return types.AppConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}
