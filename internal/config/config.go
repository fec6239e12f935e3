// Package config loads the decoding limits used by the command line tool.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/numcbor"
	"github.com/calebcase/numcbor/jsonnum"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

// DecodeLimits bound the binary decoder.
type DecodeLimits struct {
	Strict           bool `toml:"strict" yaml:"strict"`
	MaxBignumBytes   int  `toml:"max_bignum_bytes" yaml:"max_bignum_bytes"`
	MaxExponentBytes int  `toml:"max_exponent_bytes" yaml:"max_exponent_bytes"`
	MaxExponent      int  `toml:"max_exponent" yaml:"max_exponent"`
	MaxStringBytes   int  `toml:"max_string_bytes" yaml:"max_string_bytes"`
	MaxDepth         int  `toml:"max_depth" yaml:"max_depth"`
}

// JSONLimits bound the JSON number parser.
type JSONLimits struct {
	MaxDigits         int `toml:"max_digits" yaml:"max_digits"`
	MaxExponentDigits int `toml:"max_exponent_digits" yaml:"max_exponent_digits"`
}

// Limits is the configuration file. Zero limits mean no limit.
type Limits struct {
	Decode DecodeLimits `toml:"decode" yaml:"decode"`
	JSON   JSONLimits   `toml:"json" yaml:"json"`
}

// Default returns the library defaults.
func Default() Limits {
	d := numcbor.DefaultDecOptions()
	j := jsonnum.DefaultOptions()

	return Limits{
		Decode: DecodeLimits{
			Strict:           d.Strict,
			MaxBignumBytes:   d.MaxBignumBytes,
			MaxExponentBytes: d.MaxExponentBytes,
			MaxExponent:      d.MaxExponent,
			MaxStringBytes:   d.MaxStringBytes,
			MaxDepth:         d.MaxDepth,
		},
		JSON: JSONLimits{
			MaxDigits:         j.MaxDigits,
			MaxExponentDigits: j.MaxExponentDigits,
		},
	}
}

// Load reads limits from a TOML or YAML file, chosen by extension (.yaml and
// .yml are YAML, anything else TOML). Keys not present keep their defaults;
// unknown keys are rejected. An empty path returns Default.
func Load(path string) (l Limits, err error) {
	l = Default()

	if path == "" {
		return l, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Limits{}, Error.Wrap(oops.Trace(err))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)

		err = dec.Decode(&l)
		if err != nil && !errors.Is(err, io.EOF) {
			return Limits{}, Error.New("%s: %v", path, err)
		}
	default:
		md, err := toml.Decode(string(content), &l)
		if err != nil {
			return Limits{}, Error.New("%s: %v", path, err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Limits{}, Error.New("%s: unknown keys %v", path, undecoded)
		}
	}

	err = l.Validate()
	if err != nil {
		return Limits{}, err
	}

	return l, nil
}

// Validate rejects negative limits.
func (l Limits) Validate() error {
	values := map[string]int{
		"decode.max_bignum_bytes":   l.Decode.MaxBignumBytes,
		"decode.max_exponent_bytes": l.Decode.MaxExponentBytes,
		"decode.max_exponent":       l.Decode.MaxExponent,
		"decode.max_string_bytes":   l.Decode.MaxStringBytes,
		"decode.max_depth":          l.Decode.MaxDepth,
		"json.max_digits":           l.JSON.MaxDigits,
		"json.max_exponent_digits":  l.JSON.MaxExponentDigits,
	}

	for key, v := range values {
		if v < 0 {
			return Error.New("%s must not be negative, got %d", key, v)
		}
	}

	return nil
}

// DecOptions returns the binary decoder options.
func (l Limits) DecOptions() numcbor.DecOptions {
	return numcbor.DecOptions{
		Strict:           l.Decode.Strict,
		MaxBignumBytes:   l.Decode.MaxBignumBytes,
		MaxExponentBytes: l.Decode.MaxExponentBytes,
		MaxExponent:      l.Decode.MaxExponent,
		MaxStringBytes:   l.Decode.MaxStringBytes,
		MaxDepth:         l.Decode.MaxDepth,
	}
}

// JSONOptions returns the JSON number parser options.
func (l Limits) JSONOptions() jsonnum.Options {
	return jsonnum.Options{
		MaxDigits:         l.JSON.MaxDigits,
		MaxExponentDigits: l.JSON.MaxExponentDigits,
	}
}
