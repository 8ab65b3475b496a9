package config

import (
	"log"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the given directory,
// skipping anything that already exists, and returns the loaded result.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	fs := afero.NewBasePathFs(afero.NewOsFs(), dir)

	exists, err := afero.Exists(fs, ConfigurationName)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("%s already exists, skipping", ConfigurationName)
	} else {
		logger.Printf("creating %s", ConfigurationName)
		if err := afero.WriteFile(fs, ConfigurationName, defaultConfigData, 0644); err != nil {
			return nil, err
		}
	}

	return Load(dir)
}
