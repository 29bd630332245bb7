package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	EnvVars EnvVars `json:"env"`
}

// EnvVars holds environment variables read by the client.
// Fields tagged `optional:"true"` are skipped by CheckConfigEnvFields.
// A zero RequestTimeout or RateLimit turns that limit off.
type EnvVars struct {
	APIURL         string        `env:"MOVIEREC_API_URL" envDefault:"http://localhost:5000"`
	SessionFile    string        `env:"MOVIEREC_SESSION_FILE,expand" envDefault:"${HOME}/.movierec/session.yaml"`
	RequestTimeout time.Duration `env:"MOVIEREC_REQUEST_TIMEOUT" envDefault:"0s" optional:"true"`
	RateLimit      float64       `env:"MOVIEREC_RATE_LIMIT" envDefault:"5" optional:"true"`
	Environment    string        `env:"MOVIEREC_ENV" envDefault:"development"`
}

// LoadConfig parses environment variables into the Config struct.
func LoadConfig() (*Config, error) {
	var config Config
	if err := env.Parse(&config.EnvVars); err != nil {
		return nil, err
	}
	return &config, nil
}

// IsDev reports whether the client runs in development mode.
func (c *Config) IsDev() bool {
	return c.EnvVars.Environment != "production"
}

// CheckConfigEnvFields validates that all required EnvVars fields are set
// and that the API address is a usable URL.
func (c *Config) CheckConfigEnvFields() error {
	if err := checkFieldsRecursive(reflect.ValueOf(c.EnvVars)); err != nil {
		return err
	}
	if !govalidator.IsRequestURL(c.EnvVars.APIURL) {
		return fmt.Errorf("$APIURL is not a valid URL: %q", c.EnvVars.APIURL)
	}
	if c.EnvVars.RateLimit < 0 {
		return fmt.Errorf("$RateLimit must not be negative")
	}
	if c.EnvVars.RequestTimeout < 0 {
		return fmt.Errorf("$RequestTimeout must not be negative")
	}
	return nil
}

func checkFieldsRecursive(v reflect.Value) error {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := v.Type().Field(i)
		if fieldType.Tag.Get("optional") == "true" {
			continue
		}
		if isZeroValue(field) {
			return fmt.Errorf("$%s must be set", fieldType.Name)
		}
		if field.Kind() == reflect.Struct {
			if err := checkFieldsRecursive(field); err != nil {
				return err
			}
		}
	}
	return nil
}

func isZeroValue(v reflect.Value) bool {
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}
