package config

import "os"

func IsDebug() bool {
	return os.Getenv("FACTBOT_DEBUG") == "1"
}
