package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// LUCA_ALLOCATOR_TOTAL_TOKENS.
const EnvPrefix = "LUCA_ALLOCATOR"

// Load reads an AllocatorConfig from the YAML file at path, applying
// defaults for unset keys and LUCA_ALLOCATOR_* environment overrides
// on top. The result is validated before being returned.
//
// An empty path skips file reading and yields defaults plus
// environment overrides.
func Load(path string) (AllocatorConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("strategy", string(def.Strategy))
	v.SetDefault("gamma", def.Gamma)
	v.SetDefault("total_tokens", def.TotalTokens)
	v.SetDefault("half_saturation", def.HalfSaturation)
	v.SetDefault("competition_coefficient", def.CompetitionCoefficient)
	v.SetDefault("max_iterations", def.MaxIterations)
	v.SetDefault("convergence_epsilon", def.ConvergenceEpsilon)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return AllocatorConfig{}, fmt.Errorf("reading allocator config: %w", err)
		}
	}

	// "gamma" accepts either a number or a preset name.
	if name := v.GetString("gamma"); name != "" {
		if gamma, ok := Presets[strings.ToLower(name)]; ok {
			v.Set("gamma", gamma)
		}
	}

	var cfg AllocatorConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return AllocatorConfig{}, fmt.Errorf("unmarshaling allocator config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return AllocatorConfig{}, err
	}
	return cfg, nil
}
