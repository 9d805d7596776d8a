// Package config loads dotapt's application settings.
//
// Settings are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config file: an explicit path, or config.toml / config.yaml
//     under $XDG_CONFIG_HOME/dotapt
//  3. DOTAPT_* environment variables, where DOTAPT_APT_PACKAGE_MANAGER
//     sets apt.package_manager
//
// Directive defaults written in a task file are not settings; they travel
// through types.RunContext.
package config
