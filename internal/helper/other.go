package helper

import (
	"os"
	"time"

	"github.com/google/uuid"
)

func GetCurrentTime(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

func GenerateUID() string {
	return uuid.New().String()
}

func CheckIfFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
