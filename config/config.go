// Package config loads the nibble settings from a Starlark file.
//
// A configuration file is a Starlark program; its global variables are the
// settings. For example:
//
//	header = "Machine code (hex):"
//	labels = True
//	max_ticks = 10 * 1000
//
// Globals beginning with an underscore are private to the file and ignored.
package config

import (
	"errors"
	"os"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/nibble/translate"
)

var f = translate.From

var (
	ErrKeyUnknown = errors.New(f("unknown setting"))
	ErrKeyType    = errors.New(f("wrong setting type"))
)

// ErrSetting indicates which setting failed to load.
type ErrSetting struct {
	Key string
	Err error
}

func (err *ErrSetting) Error() string {
	return f("%v: %v", err.Key, err.Err)
}

func (err *ErrSetting) Unwrap() error {
	return err.Err
}

// DEFAULT_FILE is the configuration loaded when present and none is named.
const DEFAULT_FILE = "nibble.star"

// Config holds the command settings.
type Config struct {
	Header   string // Header line printed above the hex listing.
	Labels   bool   // If set, the label table is printed after the listing.
	Verbose  bool   // If set, the assembler and emulator log their actions.
	MaxTicks int    // Emulator instruction limit, zero for unlimited.
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Header:   f("Machine code (hex):"),
		MaxTicks: 1000,
	}
}

// setter converts a Starlark value into a Config field.
type setter func(cfg *Config, value starlark.Value) bool

var setterMap = map[string]setter{
	"header": func(cfg *Config, value starlark.Value) (ok bool) {
		str, ok := value.(starlark.String)
		if ok {
			cfg.Header = string(str)
		}
		return
	},
	"labels": func(cfg *Config, value starlark.Value) (ok bool) {
		b, ok := value.(starlark.Bool)
		if ok {
			cfg.Labels = bool(b)
		}
		return
	},
	"verbose": func(cfg *Config, value starlark.Value) (ok bool) {
		b, ok := value.(starlark.Bool)
		if ok {
			cfg.Verbose = bool(b)
		}
		return
	},
	"max_ticks": func(cfg *Config, value starlark.Value) (ok bool) {
		i, ok := value.(starlark.Int)
		if !ok {
			return
		}
		i64, ok := i.Int64()
		if ok {
			cfg.MaxTicks = int(i64)
		}
		return
	},
}

// Parse evaluates Starlark source, applying its globals over the defaults.
// The source may be a string, []byte or io.Reader.
func Parse(filename string, src any) (cfg Config, err error) {
	cfg = Default()

	thread := &starlark.Thread{Name: filename}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, nil)
	if err != nil {
		return
	}

	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}
		set, ok := setterMap[key]
		if !ok {
			err = &ErrSetting{Key: key, Err: ErrKeyUnknown}
			return
		}
		if !set(&cfg, globals[key]) {
			err = &ErrSetting{Key: key, Err: ErrKeyType}
			return
		}
	}

	return
}

// Load reads a configuration file. If filename is empty, DEFAULT_FILE is
// read when it exists, otherwise the defaults are returned.
func Load(filename string) (cfg Config, err error) {
	if len(filename) == 0 {
		_, err = os.Stat(DEFAULT_FILE)
		if errors.Is(err, os.ErrNotExist) {
			cfg = Default()
			err = nil
			return
		}
		filename = DEFAULT_FILE
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	return Parse(filename, data)
}
