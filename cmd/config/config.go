package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Format is the encoding of a config file
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// ErrUnknownFormat is returned when the extension names no known format
var ErrUnknownFormat = errors.New("unknown config format")

// FormatOf returns the format named by the extension of the path
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%v", path)
}

// LoadFile parse the config from the file of the path
func LoadFile(path string, v interface{}) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	return LoadReader(file, format, v)
}

// LoadString parse the config from the string
func LoadString(data string, format Format, v interface{}) error {
	return LoadReader(bytes.NewReader([]byte(data)), format, v)
}

// LoadReader parse the config from the file of the reader
func LoadReader(r io.Reader, format Format, v interface{}) error {
	switch format {
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(v); err != nil {
			return errors.WithStack(err)
		}
		return nil
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.SetStrict(true)
		if err := dec.Decode(v); err != nil {
			return errors.WithStack(err)
		}
		return nil
	}
	return errors.Wrapf(ErrUnknownFormat, "%v", format)
}
