package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/imdario/mergo"
	yaml "github.com/jesseduffield/yaml"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/jedisct1/go-spn"
)

// Config holds the layer description. Fields are in PascalCase here and
// camelCase in the YAML file.
type Config struct {
	// Bits is the width of every S-box.
	Bits int `yaml:"bits,omitempty"`

	// SBoxes is how many copies of the S-box make up the substitution layer.
	// Zero means the count is taken from the input length.
	SBoxes int `yaml:"sboxes,omitempty"`

	// Table is the S-box table. Empty selects the default 4-bit table, or a
	// generated one when Seed is set.
	Table []int `yaml:"table,omitempty"`

	// Permutation maps input bit i to output bit Permutation[i]. Empty means
	// identity, or a generated permutation when Seed is set.
	Permutation []int `yaml:"permutation,omitempty"`

	// Seed derives the table and/or permutation that were not given explicitly.
	Seed string `yaml:"seed,omitempty"`

	// Group is the digit grouping used when printing states.
	Group int `yaml:"group,omitempty"`

	// Decrypt runs the inverse layers in reverse order.
	Decrypt bool `yaml:"decrypt,omitempty"`

	// LogLevel is parsed by logrus; unknown levels fall back to info.
	LogLevel string `yaml:"logLevel,omitempty"`
}

func defaultConfig() Config {
	return Config{
		Bits:     spn.DefaultSBoxBits,
		Group:    spn.DefaultGroupSize,
		LogLevel: "info",
	}
}

// parseYAMLConfig decodes the file at path over config, leaving fields the
// file does not mention untouched.
func parseYAMLConfig(config *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(content, config); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// mergeFlags overrides config with every non-zero field of flags. Zero
// values (false, 0, "") never override, so a file setting such as
// decrypt: true cannot be switched off from the command line.
func mergeFlags(config *Config, flags Config) error {
	return errors.Wrap(mergo.Merge(config, flags, mergo.WithOverride), "merge flags")
}

// flagConfig collects the command line flags into a Config. Flags have zero
// defaults so that only the ones actually given override the file.
func flagConfig(c *cli.Context) (Config, error) {
	table, err := parseIntList(c.String("sbox"))
	if err != nil {
		return Config{}, errors.Wrap(err, "--sbox")
	}
	perm, err := parseIntList(c.String("perm"))
	if err != nil {
		return Config{}, errors.Wrap(err, "--perm")
	}
	return Config{
		Bits:        c.Int("bits"),
		SBoxes:      c.Int("sboxes"),
		Table:       table,
		Permutation: perm,
		Seed:        c.String("seed"),
		Group:       c.Int("group"),
		Decrypt:     c.Bool("decrypt"),
		LogLevel:    c.String("log-level"),
	}, nil
}

// parseIntList parses "3, 1,2,0" into []int{3, 1, 2, 0}. An empty string
// yields nil.
func parseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "bad list element %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
