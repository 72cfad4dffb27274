package utils

import (
	"log"
	"os"
)

// InitLogger returns the application logger. All request and lifecycle logs
// go through this instance so output stays uniform.
func InitLogger() *log.Logger {
	return log.New(os.Stdout, "[EduBridge] ", log.LstdFlags|log.LUTC)
}
