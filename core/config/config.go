package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

const (
	// ConfigurationName is the name of the config file within its directory.
	ConfigurationName = "config.yaml"

	// EnvFileName is an optional dotenv file next to the configuration that
	// is loaded into the environment before the report runs.
	EnvFileName = ".env"
)

// Color output modes.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	// Banner is the line that opens the report.
	Banner string `json:"banner" validate:"required"`

	// Footer is the line that closes the report.
	Footer string `json:"footer" validate:"required"`

	// ListingLimit caps the number of directory entries printed; 0 means
	// unlimited. The default of 10 is inherited from the report this tool
	// replaces.
	ListingLimit int `json:"listing_limit" validate:"gte=0"`

	// Color controls ANSI escapes in the report output.
	Color string `json:"color" validate:"oneof=always auto never"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration.
func Default() *Configuration {
	return defaultConfig()
}
