package config

import "os"

func IsDebug() bool {
	return os.Getenv("CAUSETTE_DEBUG") == "1"
}
