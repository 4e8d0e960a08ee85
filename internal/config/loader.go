package config

import (
	"os"
	"path/filepath"
)

// GetConfigPath determines the configuration file path.
// Priority:
// 1. -config command-line flag
// 2. PATHEWATCH_CONFIG environment variable
// 3. config.json in the current working directory
// 4. config.yaml in the current working directory
// 5. config.json in the executable's directory
// 6. config.yaml in the executable's directory
// Returns "" when no candidate exists on disk.
func GetConfigPath(configFilePathFlag string) string {
	if configFilePathFlag != "" {
		if fileExists(configFilePathFlag) {
			return configFilePathFlag
		}
		return ""
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if fileExists(envPath) {
			return envPath
		}
		return ""
	}

	cwd, errCwd := os.Getwd()
	exeDir := ""
	if exePath, errExe := os.Executable(); errExe == nil {
		exeDir = filepath.Dir(exePath)
	}

	defaultFiles := []string{"config.json", "config.yaml", "config.yml"}
	locations := []string{}
	if errCwd == nil {
		locations = append(locations, cwd)
	}
	if exeDir != "" && (errCwd != nil || exeDir != cwd) {
		locations = append(locations, exeDir)
	}

	for _, loc := range locations {
		for _, file := range defaultFiles {
			path := filepath.Join(loc, file)
			if fileExists(path) {
				return path
			}
		}
	}
	return ""
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
