package lodestar

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/finchley/lodestar/errdefs"
)

// Configuration holds runtime settings read from environment variables.
//
// | Variable     | Default     | Validation            |
// |--------------|-------------|-----------------------|
// | DATABASE_URL | ""          | none; empty triggers the paths.Database fallback |
// | IP           | "localhost" | none                  |
// | PORT         | "3000"      | must parse as uint16  |
// | RUST_LOG     | ""          | none                  |
//
// Port is the only field validated at load time: a malformed port is cheaper
// to catch at startup than at first connection. The other fields are opaque
// strings whose failure modes belong to downstream consumers.
type Configuration struct {
	DB      string `mapstructure:"db"`
	IP      string `mapstructure:"ip"`
	Port    uint16 `mapstructure:"-"`
	RustLog string `mapstructure:"rust_log"`
}

// NewConfiguration reads the four variables, applying defaults for any that
// are unset. Returns an invalid_port error when PORT does not parse as a
// 16-bit unsigned integer.
func NewConfiguration() (Configuration, error) {
	v := viper.New()
	v.SetDefault("db", "")
	v.SetDefault("ip", "localhost")
	v.SetDefault("port", "3000")
	v.SetDefault("rust_log", "")

	// The variable names are fixed by convention, so they are bound
	// explicitly rather than derived from a prefix.
	v.BindEnv("db", "DATABASE_URL")
	v.BindEnv("ip", "IP")
	v.BindEnv("port", "PORT")
	v.BindEnv("rust_log", "RUST_LOG")

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	port, err := ParsePort(v.GetString("port"))
	if err != nil {
		return Configuration{}, err
	}
	cfg.Port = port

	return cfg, nil
}

// ParsePort validates a textual port value as a 16-bit unsigned integer.
// Out-of-range values are rejected, never truncated.
func ParsePort(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errdefs.InvalidPort(s)
	}
	return uint16(n), nil
}

// WithDB returns a copy with the database URL/path set.
func (c Configuration) WithDB(db string) Configuration {
	c.DB = db
	return c
}

// WithIP returns a copy with the bind address set.
func (c Configuration) WithIP(ip string) Configuration {
	c.IP = ip
	return c
}

// WithPort returns a copy with the port set. The value must fit in 16 bits;
// anything else is a programming error and panics rather than silently
// truncating.
func (c Configuration) WithPort(port int) Configuration {
	if port < 0 || port > 65535 {
		panic(fmt.Sprintf("port must be 0-65535, got %d", port))
	}
	c.Port = uint16(port)
	return c
}

// WithRustLog returns a copy with the log filter directive set.
func (c Configuration) WithRustLog(filter string) Configuration {
	c.RustLog = filter
	return c
}
