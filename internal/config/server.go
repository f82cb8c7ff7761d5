package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/docker/go-units"
)

const (
	EnvServerHost            = "SERVER_HOST"
	EnvServerPort            = "SERVER_PORT"
	EnvServerReadTimeout     = "SERVER_READ_TIMEOUT"
	EnvServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	EnvServerIdleTimeout     = "SERVER_IDLE_TIMEOUT"
	EnvServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"

	// EnvServerMaxHeaderSize accepts human-readable sizes such as "64KB".
	EnvServerMaxHeaderSize = "SERVER_MAX_HEADER_SIZE"
)

// ServerConfig contains HTTP listener configuration.
// Durations are Go duration strings; MaxHeaderSize is a human-readable size.
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeout     string `toml:"read_timeout"`
	WriteTimeout    string `toml:"write_timeout"`
	IdleTimeout     string `toml:"idle_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
	MaxHeaderSize   string `toml:"max_header_size"`

	maxHeaderBytes int
}

func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

func (c *ServerConfig) IdleTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.IdleTimeout)
	return d
}

func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// MaxHeaderBytes is the parsed MaxHeaderSize; it is zero until Finalize succeeds.
func (c *ServerConfig) MaxHeaderBytes() int {
	return c.maxHeaderBytes
}

func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Host != "" {
		c.Host = overlay.Host
	}
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	if overlay.ReadTimeout != "" {
		c.ReadTimeout = overlay.ReadTimeout
	}
	if overlay.WriteTimeout != "" {
		c.WriteTimeout = overlay.WriteTimeout
	}
	if overlay.IdleTimeout != "" {
		c.IdleTimeout = overlay.IdleTimeout
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.MaxHeaderSize != "" {
		c.MaxHeaderSize = overlay.MaxHeaderSize
	}
}

func (c *ServerConfig) loadDefaults() {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.ReadTimeout == "" {
		c.ReadTimeout = "1m"
	}
	if c.WriteTimeout == "" {
		c.WriteTimeout = "15m"
	}
	if c.IdleTimeout == "" {
		c.IdleTimeout = "2m"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.MaxHeaderSize == "" {
		c.MaxHeaderSize = "1MB"
	}
}

func (c *ServerConfig) loadEnv() {
	if v := os.Getenv(EnvServerHost); v != "" {
		c.Host = v
	}
	if v := os.Getenv(EnvServerPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv(EnvServerReadTimeout); v != "" {
		c.ReadTimeout = v
	}
	if v := os.Getenv(EnvServerWriteTimeout); v != "" {
		c.WriteTimeout = v
	}
	if v := os.Getenv(EnvServerIdleTimeout); v != "" {
		c.IdleTimeout = v
	}
	if v := os.Getenv(EnvServerShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvServerMaxHeaderSize); v != "" {
		c.MaxHeaderSize = v
	}
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}

	durations := map[string]string{
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"idle_timeout":     c.IdleTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	}
	for name, v := range durations {
		if _, err := time.ParseDuration(v); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	size, err := units.FromHumanSize(c.MaxHeaderSize)
	if err != nil {
		return fmt.Errorf("invalid max_header_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_header_size must be positive")
	}
	c.maxHeaderBytes = int(size)

	return nil
}
