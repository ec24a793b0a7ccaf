/*
Package config loads the robot-brain configuration.

# Overview

Configuration is layered: compiled-in defaults, then an optional YAML
file, then environment variables with the ROBOTBRAIN prefix. The Loader
is a builder:

	cfg, err := config.NewLoader().
	    WithConfigPath("robotbrain.yaml").
	    WithEnvPrefix("ROBOTBRAIN").
	    Load()

Environment keys follow the struct nesting through env tags, e.g.
ROBOTBRAIN_SUPERVISOR_TIMEOUT or ROBOTBRAIN_MEMORY_REDIS_ADDR.

NewLogger builds the zap logger described by the Log section.
*/
package config
