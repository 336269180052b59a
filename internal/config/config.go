package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host     string   `koanf:"host"`
	Notes    Notes    `koanf:"notes"`
	Calendar Calendar `koanf:"calendar"`
	Google   Google   `koanf:"google"`
	Database Database `koanf:"db"`
}

type Notes struct {
	Dir string `koanf:"dir"`
	// Watch enables the filesystem watcher; rescans still run on the cron
	// schedule when disabled.
	Watch      bool   `koanf:"watch"`
	RescanCron string `koanf:"rescancron"`
}

type Calendar struct {
	Id       string `koanf:"id"`
	Timezone string `koanf:"timezone"`
}

// Google holds fallback OAuth client credentials. Values stored through the
// settings API take precedence over these.
type Google struct {
	ClientId     string `koanf:"clientid"`
	ClientSecret string `koanf:"clientsecret"`
	RedirectUri  string `koanf:"redirecturi"`
}

type Database struct {
	Path string `koanf:"path"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host: "http://localhost:8181",
		Notes: Notes{
			Dir:        "./notes",
			Watch:      true,
			RescanCron: "@every 15m",
		},
		Calendar: Calendar{
			Id:       "primary",
			Timezone: "Europe/Warsaw",
		},
		Google: Google{
			RedirectUri: "http://localhost",
		},
		Database: Database{
			Path: "./notecal.db",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "NOTECAL_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "NOTECAL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
