// Package store persists events, reminders, and their calendar/list
// grouping on disk. Access to each logical store goes through a single
// value, so concurrent CLI invocations never race inside one process.
package store

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the on-disk database.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the database path from, in order: an .agenda config
// file in the working directory, AGENDA_* environment variables, and the
// ~/.agenda.db default.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.agenda.db")
	viper.SetConfigName(".agenda") // .yaml is implicit
	viper.SetEnvPrefix("AGENDA")
	viper.AutomaticEnv()

	if override := os.Getenv("AGENDA_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
		path = expanded
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// PathConfig wraps an explicit base path, used by tests and by callers
// that manage their own configuration.
type PathConfig string

func (p PathConfig) BasePath() string {
	return string(p)
}
