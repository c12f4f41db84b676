package scene

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/ZebraDevs/zeta-icons-figma-plugin/internal/errors"
)

// Format is a scene serialization format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ErrUnknownFormat indicates a file extension with no matching codec.
var ErrUnknownFormat = errors.New("unknown scene format")

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", filepath.Ext(path))
	}
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &f)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&f)
	case FormatTOML:
		err = toml.Unmarshal(data, &f)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s scene", format)
	}
	return &f, nil
}

// Encode serializes f in the given format.
func Encode(f *File, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(f); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case FormatJSON:
		data, err = json.MarshalIndent(f, "", "  ")
		data = append(data, '\n')
	case FormatTOML:
		data, err = toml.Marshal(f)
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s scene", format)
	}
	return data, nil
}
