package config

import (
	"os"
	"path/filepath"
)

func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("CAUSETTE_RUNTIME_PATH"))
}

// resolveRuntimePath anchors relative runtime paths in the user's home.
func resolveRuntimePath(path string) string {
	if path == "" {
		path = ".causette"
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

func LogPath(runtimePath string) string {
	return filepath.Join(runtimePath, "causette.log")
}
