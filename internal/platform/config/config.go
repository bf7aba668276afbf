package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	stateDir    = ".mdjournal"
	envPrefix   = "MDJOURNAL_"
	defaultAddr = "127.0.0.1:7777"
)

type Config struct {
	VaultPath   string
	StateDir    string
	DBPath      string
	EntriesDir  string
	DraftPath   string
	FilePath    string
	LexiconPath string

	Timezone    string
	Location    *time.Location
	ServeAddr   string
	SeriesLimit int
	Verbose     bool
}

type fileConfig struct {
	Timezone string `toml:"timezone"`
	Verbose  *bool  `toml:"verbose"`
	Serve    struct {
		Addr string `toml:"addr"`
	} `toml:"serve"`
	Series struct {
		Limit int `toml:"limit"`
	} `toml:"series"`
}

// DefaultConfig returns the settings used when neither config.toml nor the
// environment override anything.
func DefaultConfig(vaultPath string) Config {
	dir := filepath.Join(vaultPath, stateDir)
	return Config{
		VaultPath:   vaultPath,
		StateDir:    dir,
		DBPath:      filepath.Join(dir, "mdjournal.db"),
		EntriesDir:  filepath.Join(vaultPath, "entries"),
		DraftPath:   filepath.Join(dir, "draft.json"),
		FilePath:    filepath.Join(dir, "config.toml"),
		LexiconPath: filepath.Join(dir, "lexicon.yaml"),
		Timezone:    "Local",
		Location:    time.Local,
		ServeAddr:   defaultAddr,
		SeriesLimit: 14,
	}
}

func New(vaultPath string) (Config, error) {
	return Load(vaultPath, os.LookupEnv)
}

// Load layers defaults, <vault>/.mdjournal/config.toml, <vault>/.env and the
// process environment, in that order.
func Load(vaultPath string, lookup func(string) (string, bool)) (Config, error) {
	if vaultPath == "" {
		return Config{}, fmt.Errorf("vault path is required")
	}
	cfg := DefaultConfig(vaultPath)
	if err := cfg.applyFile(); err != nil {
		return Config{}, err
	}
	dotenv, err := readDotenv(filepath.Join(vaultPath, ".env"))
	if err != nil {
		return Config{}, err
	}
	get := func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(envPrefix + key); ok {
				return v, true
			}
		}
		v, ok := dotenv[envPrefix+key]
		return v, ok
	}
	if err := cfg.applyEnv(get); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile() error {
	payload, err := os.ReadFile(c.FilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(payload, &fc); err != nil {
		return fmt.Errorf("decode %s: %w", c.FilePath, err)
	}
	if fc.Timezone != "" {
		c.Timezone = fc.Timezone
	}
	if fc.Verbose != nil {
		c.Verbose = *fc.Verbose
	}
	if fc.Serve.Addr != "" {
		c.ServeAddr = fc.Serve.Addr
	}
	if fc.Series.Limit != 0 {
		c.SeriesLimit = fc.Series.Limit
	}
	return nil
}

func (c *Config) applyEnv(get func(string) (string, bool)) error {
	if v, ok := get("TIMEZONE"); ok && strings.TrimSpace(v) != "" {
		c.Timezone = strings.TrimSpace(v)
	}
	if v, ok := get("ADDR"); ok && strings.TrimSpace(v) != "" {
		c.ServeAddr = strings.TrimSpace(v)
	}
	if v, ok := get("VERBOSE"); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%sVERBOSE: %w", envPrefix, err)
		}
		c.Verbose = b
	}
	return nil
}

func (c *Config) Validate() error {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	c.Location = loc
	if c.SeriesLimit <= 0 {
		return fmt.Errorf("series.limit must be > 0")
	}
	if strings.TrimSpace(c.ServeAddr) == "" {
		return fmt.Errorf("serve.addr is required")
	}
	return nil
}

// Save writes the overridable settings back to config.toml.
func (c Config) Save() error {
	if err := os.MkdirAll(c.StateDir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	fc := fileConfig{Timezone: c.Timezone, Verbose: &c.Verbose}
	fc.Serve.Addr = c.ServeAddr
	fc.Series.Limit = c.SeriesLimit
	payload, err := toml.Marshal(fc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(c.FilePath, payload, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}
