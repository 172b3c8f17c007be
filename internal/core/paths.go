package core

import (
	"os"
	"path/filepath"
	"strings"
)

// dataDirName is the per-user directory under $HOME holding scores,
// configs, screenshots and the SSH host key.
const dataDirName = ".brickfall"

// DataPath joins elem onto the per-user data directory.
func DataPath(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home, dataDirName}, elem...)...), nil
}

// ExpandHome replaces a leading "~" with the user's home directory. Other
// paths come back unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
