package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal("Machine code (hex):", cfg.Header)
	assert.False(cfg.Labels)
	assert.False(cfg.Verbose)
	assert.Equal(1000, cfg.MaxTicks)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		`_prefix = "nibble"`,
		`header = _prefix + " output"`,
		`labels = True`,
		`verbose = 1 > 0`,
		`max_ticks = 10 * 1000`,
	}, "\n")

	cfg, err := Parse("test.star", src)
	assert.NoError(err)
	assert.Equal(Config{
		Header:   "nibble output",
		Labels:   true,
		Verbose:  true,
		MaxTicks: 10000,
	}, cfg)

	cfg, err = Parse("empty.star", "")
	assert.NoError(err)
	assert.Equal(Default(), cfg)

	cfg, err = Parse("reader.star", strings.NewReader(`header = ""`))
	assert.NoError(err)
	assert.Equal("", cfg.Header)
}

func TestParseErrors(t *testing.T) {
	table := [](struct {
		name string
		src  string
		key  string
		err  error
	}){
		{"unknown", `colour = "red"`, "colour", ErrKeyUnknown},
		{"header type", `header = 3`, "header", ErrKeyType},
		{"labels type", `labels = "yes"`, "labels", ErrKeyType},
		{"verbose type", `verbose = 1`, "verbose", ErrKeyType},
		{"max_ticks type", `max_ticks = "lots"`, "max_ticks", ErrKeyType},
		{"max_ticks size", `max_ticks = 1 << 80`, "max_ticks", ErrKeyType},
	}

	for _, entry := range table {
		t.Run(entry.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Parse(entry.name+".star", entry.src)
			assert.ErrorIs(err, entry.err)

			var setting *ErrSetting
			if assert.ErrorAs(err, &setting) {
				assert.Equal(entry.key, setting.Key)
			}
		})
	}

	_, err := Parse("syntax.star", "header = ")
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load("")
	assert.NoError(err)
	assert.Equal(Default(), cfg)

	_, err = Load("missing.star")
	assert.ErrorIs(err, os.ErrNotExist)

	err = os.WriteFile(filepath.Join(dir, DEFAULT_FILE), []byte("labels = True\n"), 0o644)
	assert.NoError(err)

	cfg, err = Load("")
	assert.NoError(err)
	assert.True(cfg.Labels)

	other := filepath.Join(dir, "other.star")
	err = os.WriteFile(other, []byte("max_ticks = 5\n"), 0o644)
	assert.NoError(err)

	cfg, err = Load(other)
	assert.NoError(err)
	assert.False(cfg.Labels)
	assert.Equal(5, cfg.MaxTicks)
}
