// Package config loads optional per-directory defaults from .warnsum.toml.
//
// The file is entirely optional; a missing file yields the built-in
// defaults. Explicit CLI flags always take precedence over file values.
//
//	[report]
//	top = 10
//
//	[keywords]
//	min_length = 5
//	ignore = ["const", "static"]
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the per-directory configuration file probed by Load.
const FileName = ".warnsum.toml"

// Defaults used when neither the file nor a flag supplies a value.
const (
	DefaultTopN          = 10
	DefaultKeywordMinLen = 5
)

// Config holds the effective defaults for a run.
type Config struct {
	Report struct {
		Top int `toml:"top"`
	} `toml:"report"`
	Keywords struct {
		MinLength int      `toml:"min_length"`
		Ignore    []string `toml:"ignore"`
	} `toml:"keywords"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Report.Top = DefaultTopN
	c.Keywords.MinLength = DefaultKeywordMinLen
	return c
}

// Load reads <dir>/.warnsum.toml on top of the built-in defaults. A missing
// file is not an error; a malformed or invalid file is fatal and names the
// file.
func Load(dir string) (Config, error) {
	c := Default()
	path := filepath.Join(dir, FileName)
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return c, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := c.validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// validate aggregates every constraint violation into one error.
func (c Config) validate() error {
	var errs errlist
	if c.Report.Top < 0 {
		errs.add("report.top must be >= 0 (got %d)", c.Report.Top)
	}
	if c.Keywords.MinLength < 0 {
		errs.add("keywords.min_length must be >= 0 (got %d)", c.Keywords.MinLength)
	}
	for i, kw := range c.Keywords.Ignore {
		if strings.TrimSpace(kw) == "" {
			errs.add("keywords.ignore[%d] must be non-empty", i)
		}
	}
	return errs.err()
}

// errlist aggregates multiple validation issues into a single error.
type errlist struct {
	msgs []string
}

func (e *errlist) add(format string, args ...any) {
	e.msgs = append(e.msgs, fmt.Sprintf(format, args...))
}

func (e *errlist) err() error {
	if len(e.msgs) == 0 {
		return nil
	}
	return errors.New(strings.Join(e.msgs, "\n"))
}
