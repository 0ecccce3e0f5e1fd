package config

import (
	"os"
	"path"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

// Public is everything safe to log or commit: yaml file in the config folder.
type Public struct {
	Pg            Pg     `yaml:"pg"`
	Port          int    `yaml:"port"`
	JwtTTLMinutes int    `yaml:"jwt_ttl_minutes"`
	JwtAlgorithm  string `yaml:"jwt_algorithm"`
	LogLevel      string `yaml:"log_level"`
	LogJSON       bool   `yaml:"log_json"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

// Private holds secrets. They come from the environment (optionally via a
// .env file) and never from the yaml config.
type Private struct {
	JwtKey     string
	PgPassword string
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return time.Duration(c.Public.JwtTTLMinutes) * time.Minute
}

func (c *Config) PgPassword() string {
	return c.private.PgPassword
}

// New assembles a config from already known values. Used by tests that
// provision their own database.
func New(public Public, private Private) *Config {
	return &Config{public, private}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml from configFolder and secrets from the
// environment. A .env file in the working directory is honored when present.
func MustLoad(configFolder string) *Config {
	_ = godotenv.Load() // missing .env is fine, the env may be set directly

	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		panic("JWT_SECRET_KEY must be set")
	}

	return &Config{public, Private{
		JwtKey:     jwtKey,
		PgPassword: os.Getenv("PG_PASSWORD"),
	}}
}
