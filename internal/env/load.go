package env

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Parse reads KEY=VALUE lines in .env syntax: # comments, optional export
// prefixes, and single or double quoted values.
func Parse(r io.Reader) (map[string]string, error) {
	vars, err := godotenv.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	return vars, nil
}

// Load sets the variables from the file at path. Variables already present in the
// process environment win. A missing file is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "stat %s", path)
	}
	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}
