package util

import (
	"os"
	"strings"
)

// WriteToFile writes the given lines to savePath separated by
// newlines, replacing any existing content
func WriteToFile(savePath string, lines ...string) error {
	return os.WriteFile(savePath, []byte(strings.Join(lines, "\n")), 0644)
}

// AppendToFile appends the given lines to savePath, creating the file
// if it does not exist
func AppendToFile(savePath string, lines ...string) error {
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}

	defer f.Close()

	for _, line := range lines {
		if _, err = f.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}
