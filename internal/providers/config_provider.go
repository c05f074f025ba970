package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"arenastreams/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "ARENA_LOG_LEVEL")
	viper.BindEnv("cache.enabled", "ARENA_CACHE_ENABLED")
	viper.BindEnv("cache.size", "ARENA_CACHE_SIZE")
	viper.BindEnv("persistence.saveInterval", "ARENA_SAVE_INTERVAL")
	viper.BindEnv("adblock.policy", "ARENA_ADBLOCK_POLICY")
	viper.BindEnv("adblock.mode", "ARENA_ADBLOCK_MODE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "ArenaStreams"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
