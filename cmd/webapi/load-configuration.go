package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ardanlabs/conf"
	"gopkg.in/yaml.v2"
)

// WebConfig details the API server's timeouts and listening address.
type WebConfig struct {
	APIHost         string        `conf:"default:0.0.0.0:3000" yaml:"APIHost"`
	ReadTimeout     time.Duration `conf:"default:5s" yaml:"ReadTimeout"`
	WriteTimeout    time.Duration `conf:"default:5s" yaml:"WriteTimeout"`
	ShutdownTimeout time.Duration `conf:"default:5s" yaml:"ShutdownTimeout"`
}

// DBConfig locates the SQLite database file, which is wiped and reseeded on boot.
type DBConfig struct {
	Filename string `conf:"default:./entries.db" yaml:"Filename"`
}

type Configuration struct {
	Config string    `conf:"default:./config.yml" yaml:"-"`
	Web    WebConfig `yaml:"Web"`
	DB     DBConfig  `yaml:"DB"`
	Debug  bool      `conf:"default:false" yaml:"Debug"`
}

// loadConfiguration assembles the server's configuration from defaults,
// ENTRIES_* environment variables and command line flags; an optional YAML
// file, when found at the configured path, overrides the lot.
func loadConfiguration() (cfg Configuration, err error) {

	if err = conf.Parse(os.Args[1:], "ENTRIES", &cfg); err != nil {
		if err == conf.ErrHelpWanted {
			usage, usageErr := conf.Usage("ENTRIES", &cfg)
			if usageErr != nil {
				return cfg, fmt.Errorf("generating config usage: %w", usageErr)
			}
			fmt.Println(usage)
			return cfg, err
		}
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// a missing file isn't an error; the defaults suffice for local runs
	contents, err := os.ReadFile(cfg.Config)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err = yaml.Unmarshal(contents, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
