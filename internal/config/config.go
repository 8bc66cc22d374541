package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds the tunables shared by the simulator and the server.
type Config struct {
	Trials       int    `yaml:"trials" json:"trials" toml:"trials" env:"EUCHRE_TRIALS" env-default:"50000" env-description:"trials per study"`
	Seed         uint64 `yaml:"seed" json:"seed" toml:"seed" env:"EUCHRE_SEED" env-default:"42" env-description:"top-level random seed"`
	WinningScore int    `yaml:"winning_score" json:"winning_score" toml:"winning_score" env:"EUCHRE_WINNING_SCORE" env-default:"10" env-description:"points that win a game"`
	Verbose      bool   `yaml:"verbose" json:"verbose" toml:"verbose" env:"EUCHRE_VERBOSE" env-default:"false" env-description:"log every table event"`
	Workers      int    `yaml:"workers" json:"workers" toml:"workers" env:"EUCHRE_WORKERS" env-default:"0" env-description:"simulation workers, 0 uses every CPU"`

	Database Database `yaml:"database" json:"database" toml:"database"`
	HTTP     HTTP     `yaml:"http" json:"http" toml:"http"`
}

type Database struct {
	Driver string `yaml:"driver" json:"driver" toml:"driver" env:"DB_DRIVER" env-default:"sqlite3" env-description:"sqlite3 or pgx"`
	DSN    string `yaml:"dsn" json:"dsn" toml:"dsn" env:"DB_DSN" env-default:"./euchre.db" env-description:"database connection string"`
}

type HTTP struct {
	Addr         string `yaml:"addr" json:"addr" toml:"addr" env:"HTTP_ADDR" env-default:":8080" env-description:"listen address"`
	TableDelayMS int    `yaml:"table_delay_ms" json:"table_delay_ms" toml:"table_delay_ms" env:"TABLE_DELAY_MS" env-default:"750" env-description:"pause between exhibition tricks"`
}

// Load environment variables to a Config instance. When path is set the file
// is read first and the environment overrides it.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Usage describes every environment variable.
func Usage() string {
	s, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return err.Error()
	}
	return s
}
