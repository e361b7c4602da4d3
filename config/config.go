package config

import (
	"blend/core"

	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file, BLEND_ prefixed env vars override it
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("BLEND")
	if configFile != "" {
		if err := configUtil.LoadYaml(configFile, config); err != nil {
			return err
		}
	}

	defaultConfig(config)
	return nil
}
