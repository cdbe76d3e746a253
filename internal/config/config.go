// Package config loads bjquiz defaults from HCL files.
//
// A config file sets any of the generate flags:
//
//	size     = 60
//	versions = ["A", "B", "C"]
//	out_dir  = "sheets"
//	seed     = 1234
//	jobs     = 4
//	log_level = "debug"
//	color    = "never"
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the decoded contents of a config file. Unset attributes are nil.
type File struct {
	Size     *int     `hcl:"size,optional"`
	Versions []string `hcl:"versions,optional"`
	OutDir   *string  `hcl:"out_dir,optional"`
	Seed     *int64   `hcl:"seed,optional"`
	Jobs     *int     `hcl:"jobs,optional"`
	LogLevel *string  `hcl:"log_level,optional"`
	Color    *string  `hcl:"color,optional"`
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg File
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &cfg, nil
}

// Values returns the set attributes keyed by flag name, rendered the way they
// would be typed on the command line.
func (f *File) Values() map[string]string {
	values := map[string]string{}
	if f.Size != nil {
		values["size"] = strconv.Itoa(*f.Size)
	}
	if f.Versions != nil {
		values["versions"] = strings.Join(f.Versions, ",")
	}
	if f.OutDir != nil {
		values["out-dir"] = *f.OutDir
	}
	if f.Seed != nil {
		values["seed"] = strconv.FormatInt(*f.Seed, 10)
	}
	if f.Jobs != nil {
		values["jobs"] = strconv.Itoa(*f.Jobs)
	}
	if f.LogLevel != nil {
		values["log-level"] = *f.LogLevel
	}
	if f.Color != nil {
		values["color"] = *f.Color
	}
	return values
}

// Loader is a kong.ConfigurationLoader for HCL config files. Values from the
// file sit below environment variables and flags: kong asks resolvers about
// every flag not given on the command line, so a flag whose env var is set is
// skipped here.
func Loader(r io.Reader) (kong.Resolver, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	filename := "config.hcl"
	if named, ok := r.(interface{ Name() string }); ok {
		filename = named.Name()
	}

	cfg, err := Parse(src, filename)
	if err != nil {
		return nil, err
	}
	values := cfg.Values()

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, env := range flag.Envs {
			if _, ok := os.LookupEnv(env); ok {
				return nil, nil
			}
		}
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		return nil, nil
	}), nil
}
