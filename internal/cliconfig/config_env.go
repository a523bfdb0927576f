package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (ID3MEND_*). It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("ID3MEND_LOG_LEVEL"), &cfg.LogLevel)
	s.setStringsFromList("fields", os.Getenv("ID3MEND_FIELDS"), &cfg.Fields)
	s.setStringsFromList("extensions", os.Getenv("ID3MEND_EXTENSIONS"), &cfg.Extensions)
	s.setBoolFromString("watch", os.Getenv("ID3MEND_WATCH"), &cfg.Watch)
	s.setBoolFromString("summary", os.Getenv("ID3MEND_SUMMARY"), &cfg.Summary)
}
