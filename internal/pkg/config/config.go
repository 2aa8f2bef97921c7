package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultSecret signs session tokens when SECRET is not set. It is public, so
// any deployment should override it.
const DefaultSecret = "change-me"

type Config struct {
	Console Console `yaml:"console"`
	Logger  Logger  `yaml:"logger"`
	Store   Store   `yaml:"store"`
	Auth    Auth    `yaml:"auth"`
	Export  Export  `yaml:"export"`
}

type Console struct {
	Prompt          string        `env-default:"> "  yaml:"prompt"`
	ShutdownTimeout time.Duration `env-default:"5s"  yaml:"shutdownTimeout"`
}

type Logger struct {
	Level     string   `env:"LOG_LEVEL" env-default:"info"   yaml:"level"`
	Output    []string `env-default:"stderr"                 yaml:"output"`
	ErrOutput []string `env-default:"stderr"                 yaml:"errOutput"`
}

type Store struct {
	HashAlgorithm string     `env:"HASH_ALGORITHM" env-default:"sha256" yaml:"hashAlgorithm"`
	DisableSeed   bool       `yaml:"disableSeed"`
	Admin         SeedUser   `yaml:"admin"`
	Users         []SeedUser `yaml:"users"`
	Forms         []SeedForm `yaml:"forms"`
}

type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SeedForm struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Categories  []string `yaml:"categories"`
}

type Auth struct {
	TTL    time.Duration `env-default:"12h"                       yaml:"ttl"`
	Secret string        `env:"SECRET" env-default:"change-me"     yaml:"secret"`
}

type Export struct {
	Path string `env:"EXPORT_PATH" env-default:"feedback_export.txt" yaml:"path"`
}

func New(configPath string) (Config, error) {
	if configPath == "" {
		cfg := Default()
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read env error: %w", err)
		}

		return cfg, nil
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config error: %w", err)
	}

	cfg.Store.fillSeed()

	return cfg, nil
}

// Default is the configuration used when no file is given and by the
// process-wide data service when nothing configured it first.
func Default() Config {
	cfg := Config{
		Console: Console{
			Prompt:          "> ",
			ShutdownTimeout: 5 * time.Second, //nolint:gomnd
		},
		Logger: Logger{
			Level:     "info",
			Output:    []string{"stderr"},
			ErrOutput: []string{"stderr"},
		},
		Store: DefaultStore(),
		Auth: Auth{
			TTL:    12 * time.Hour, //nolint:gomnd
			Secret: DefaultSecret,
		},
		Export: Export{
			Path: "feedback_export.txt",
		},
	}

	return cfg
}

func DefaultStore() Store {
	s := Store{
		HashAlgorithm: "sha256",
	}
	s.fillSeed()

	return s
}

// fillSeed supplies the demo accounts and forms for any seed section left
// empty in the file.
func (s *Store) fillSeed() {
	if s.Admin.Username == "" {
		s.Admin = SeedUser{Username: "admin", Password: "123"}
	}

	if len(s.Users) == 0 {
		for _, name := range []string{"deepanshu", "dev", "deepak", "divyansh", "daksh"} {
			s.Users = append(s.Users, SeedUser{Username: name, Password: "123"})
		}
	}

	if len(s.Forms) == 0 {
		s.Forms = []SeedForm{
			{
				Title:       "General Website Feedback",
				Description: "Tell us what you think...",
				Categories:  []string{"Overall Experience"},
			},
			{
				Title:       "Product Support Survey",
				Description: "How was support?",
				Categories:  []string{"Speed", "Clarity", "Friendliness"},
			},
		}
	}
}
