package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all vgc configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Bench    BenchConfig    `toml:"bench"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type BenchConfig struct {
	PinCore        int `toml:"pin_core"`
	MatrixSize     int `toml:"matrix_size"`
	RecursionSteps int `toml:"recursion_steps"`
	RecursionDepth int `toml:"recursion_depth"`
	LoopCount      int `toml:"loop_count"`
}

// Default returns a Config with sensible defaults. The bench numbers match
// the reference harness: 512x512 matrix, 40k recursion steps in 4k chunks,
// 200k loop iterations.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Bind: "127.0.0.1",
			Port: 37741,
		},
		Database: DatabaseConfig{
			Path: "", // resolved at runtime via store.DefaultDBPath()
		},
		Bench: BenchConfig{
			PinCore:        0,
			MatrixSize:     512,
			RecursionSteps: 40000,
			RecursionDepth: 4000,
			LoopCount:      200000,
		},
	}
}

// DefaultPath returns the default config file path: ~/.vgc/config.toml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".vgc", "config.toml"), nil
}

// Load reads TOML configuration from path, layered over the defaults. A
// missing file is not an error: the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// ListenAddr returns the bind:port address string.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Bind, c.Server.Port)
}
