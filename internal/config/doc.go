// Package config provides configuration management for the emojicli
// commands.
//
// Configuration is resolved in three layers: envconfig-processed environment
// variables (prefix EMOJI_) supply defaults, an optional config.yaml overrides
// them, and command-line flags applied by each command win over both. The
// column names and filter values used by the analyzer are part of the
// configuration so the tools are not tied to one exporter's CSV schema.
package config
