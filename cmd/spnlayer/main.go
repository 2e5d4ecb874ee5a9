package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	myApp := cli.NewApp()
	myApp.Name = "spnlayer"
	myApp.Usage = "apply SPN substitution and permutation layers to a bit state"
	myApp.UsageText = `spnlayer [options] <bits>, eg: spnlayer --sboxes 2 "0000 0000"`
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML file describing the layers; flags override its values",
		},
		cli.IntFlag{
			Name:  "bits",
			Usage: "SBOX width in bits (default 4)",
		},
		cli.IntFlag{
			Name:  "sboxes",
			Usage: "number of SBOXes in the substitution layer, 0 to derive from the input length",
		},
		cli.StringFlag{
			Name:  "sbox",
			Usage: `comma separated SBOX table, eg: "12,5,6,11,9,0,10,13,3,14,15,8,4,7,1,2"`,
		},
		cli.StringFlag{
			Name:  "perm",
			Usage: `comma separated permutation, entry i is the destination of bit i, eg: "3,1,2,0"`,
		},
		cli.StringFlag{
			Name:   "seed",
			Usage:  "derive the SBOX table and permutation not given explicitly from this seed",
			EnvVar: "SPNLAYER_SEED",
		},
		cli.BoolFlag{
			Name:  "decrypt, d",
			Usage: "apply the inverse layers in reverse order; cannot turn off decrypt: true from a config file",
		},
		cli.IntFlag{
			Name:  "group",
			Usage: "group output digits by this many bits (default 4)",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "panic, fatal, error, warn, info, debug or trace",
			EnvVar: "LOG_LEVEL",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			return cli.NewExitError("missing <bits> argument", 2)
		}

		config := defaultConfig()
		if path := c.String("config"); path != "" {
			if err := parseYAMLConfig(&config, path); err != nil {
				return err
			}
		}
		flags, err := flagConfig(c)
		if err != nil {
			return err
		}
		if err := mergeFlags(&config, flags); err != nil {
			return err
		}

		log := newLogger(os.Stderr, config.LogLevel)
		out, err := run(config, strings.Join(c.Args(), ""), log)
		if err != nil {
			return errors.Wrap(err, "spnlayer")
		}
		fmt.Fprintln(c.App.Writer, out)
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
