package config

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
)

// FileName is the name of the config file looked up in the working and home
// directories
const FileName = ".tablediff.yaml"

// Path returns the location of the YAML config file providing flag defaults.
// TABLEDIFF_CFG_FILE takes precedence, then FileName in the working directory,
// then FileName in the user's home directory. An empty string means no config
// file exists.
func Path() string {
	if p := os.Getenv("TABLEDIFF_CFG_FILE"); p != "" {
		return p
	}

	var candidates []string
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(wd, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			log.Debugf("using config file %s", c)
			return c
		}
	}
	return ""
}
