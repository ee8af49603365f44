package catalog

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile builds a catalog from a YAML file containing a list of hotels.
// It replaces the built-in list entirely.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}

	var hotels []Hotel
	if err := yaml.Unmarshal(data, &hotels); err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}
	if len(hotels) == 0 {
		return nil, errors.New("catalog file contains no hotels")
	}

	return New(hotels), nil
}
