package main

import (
	"flag"
)

type AppFlags struct {
	ConfigFile string
	LogLevel   string
}

func ParseFlags() AppFlags {
	configFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	configFileAlias := flag.String("c", "", "Alias for -config")

	logLevel := flag.String("log-level", "", "Log level override: trace, debug, info, warn, error (overrides config file and LOG_LEVEL)")
	logLevelAlias := flag.String("l", "", "Alias for -log-level")

	flag.Parse()

	flags := AppFlags{}

	if *configFile != "" {
		flags.ConfigFile = *configFile
	} else if *configFileAlias != "" {
		flags.ConfigFile = *configFileAlias
	}

	if *logLevel != "" {
		flags.LogLevel = *logLevel
	} else if *logLevelAlias != "" {
		flags.LogLevel = *logLevelAlias
	}

	return flags
}
