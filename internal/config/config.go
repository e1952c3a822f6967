// Package config holds the server settings. Defaults are overridden by
// environment variables, which are overridden by command-line flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	Addr            string
	AllowedOrigins  []string
	ReadBufferSize  int
	WriteBufferSize int
}

// Default returns the settings used when nothing is overridden.
func Default() Config {
	return Config{
		Addr:            ":3000",
		AllowedOrigins:  []string{"http://localhost:5173"},
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
}

// Load builds a Config from the environment and args (without the program name).
func Load(args []string) (Config, error) {
	cfg := Default()
	if addr := os.Getenv("CHESS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if origins := os.Getenv("CHESS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	addr := fs.String("addr", cfg.Addr, "listen address")
	origins := fs.String("origins", strings.Join(cfg.AllowedOrigins, ","), "comma separated allowed origins")
	fs.IntVar(&cfg.ReadBufferSize, "ws-read-buffer", cfg.ReadBufferSize, "websocket read buffer size")
	fs.IntVar(&cfg.WriteBufferSize, "ws-write-buffer", cfg.WriteBufferSize, "websocket write buffer size")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Addr = *addr
	cfg.AllowedOrigins = splitList(*origins)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("invalid configuration: empty listen address")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("invalid configuration: no allowed origins")
	}
	if c.ReadBufferSize <= 0 || c.WriteBufferSize <= 0 {
		return fmt.Errorf("invalid configuration: websocket buffer sizes must be positive")
	}
	return nil
}

// OriginList returns the origins in the comma separated form fiber's cors expects.
func (c Config) OriginList() string {
	return strings.Join(c.AllowedOrigins, ",")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
