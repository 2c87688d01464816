package fetch

import (
	"time"

	"github.com/kbukum/fetchkit/validation"
)

// Config configures a fetch Session.
type Config struct {
	// Name identifies the session in logs and component summaries.
	// Defaults to "fetch".
	Name string `yaml:"name" mapstructure:"name"`

	// Timeout bounds each request. Zero means no timeout: the blocking
	// call runs until the transfer completes or fails.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"min=0"`

	// EnableH2C switches the transport to cleartext HTTP/2.
	EnableH2C bool `yaml:"enable_h2c" mapstructure:"enable_h2c"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "fetch"
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
