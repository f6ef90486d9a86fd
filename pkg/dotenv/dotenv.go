// Package dotenv locates and loads a .env file from the working directory
// or one of its parents.
package dotenv

import (
	"os"
	"path/filepath"

	// Packages
	godotenv "github.com/joho/godotenv"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Name of the file to search for
	FileName = ".env"

	// Number of directories searched, including the starting one
	searchDepth = 10
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Find returns the path of the nearest .env file, starting at dir and
// walking up at most nine parents. The second return value is false if
// no file was found.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for range searchDepth {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false
}

// Load loads the first .env file found from each of dirs in turn. Values
// already present in the environment are not overridden. It returns the
// path that was loaded, or an empty string when there was none.
func Load(dirs ...string) (string, error) {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if path, ok := Find(dir); ok {
			return path, godotenv.Load(path)
		}
	}
	return "", nil
}

// Dirs returns the default search roots: the working directory, then the
// directory of the running executable
func Dirs() []string {
	var result []string
	if wd, err := os.Getwd(); err == nil {
		result = append(result, wd)
	}
	if exe, err := os.Executable(); err == nil {
		result = append(result, filepath.Dir(exe))
	}
	return result
}
