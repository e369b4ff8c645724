package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// tempPrefix names the scratch file written next to the config file before
// it replaces the real one.
const tempPrefix = ".yoda-config-"

// replaceFile swaps the content of path for data with a single rename, so a
// concurrent Load sees either the old or the new config. The parent
// directory must exist.
func replaceFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempPrefix+"*")
	if err != nil {
		return fmt.Errorf("creating temp config: %w", err)
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing temp config: %w", err)
	}

	if err = os.Chmod(name, perm); err != nil {
		return fmt.Errorf("setting config permissions: %w", err)
	}
	if err = os.Rename(name, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
