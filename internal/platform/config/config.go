package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	DataDir    string
	StatePath  string
	DBPath     string
	JournalDir string
	PrefsPath  string
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data directory is required")
	}
	return Config{
		DataDir:    dataDir,
		StatePath:  filepath.Join(dataDir, "state.json"),
		DBPath:     filepath.Join(dataDir, "index.db"),
		JournalDir: filepath.Join(dataDir, "journal"),
		PrefsPath:  filepath.Join(dataDir, "prefs.yaml"),
	}, nil
}
