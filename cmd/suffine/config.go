package main

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/infinivision/suffine/builder"
	"gopkg.in/natefinch/lumberjack.v2"
)

// suffineConfig is the layout of the --config TOML file.
type suffineConfig struct {
	Build buildConfig
	Log   logConfig
}

type buildConfig struct {
	BlockSize   int // bytes
	Workers     int
	Spill       *bool
	ReadAhead   int
	WriteBuffer int
	TempDir     string
}

type logConfig struct {
	File       string
	MaxSize    int // megabytes before rotation
	MaxBackups int
}

func loadConfig(file string, cfg *suffineConfig) error {
	md, err := toml.DecodeFile(file, cfg)
	if err != nil {
		return errors.Wrapf(err, "%s", file)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		fs := make([]string, len(keys))
		for i, k := range keys {
			fs[i] = k.String()
		}
		return errors.Newf("%s: unknown fields %s", file, strings.Join(fs, ", "))
	}
	return nil
}

// apply overrides the builder defaults with every field set in the file.
func (c *buildConfig) apply(cfg *builder.Config) {
	if c.BlockSize != 0 {
		cfg.BlockSize = c.BlockSize
	}
	if c.Workers != 0 {
		cfg.Workers = c.Workers
	}
	if c.Spill != nil {
		cfg.Spill = *c.Spill
	}
	if c.ReadAhead != 0 {
		cfg.ReadAhead = c.ReadAhead
	}
	if c.WriteBuffer != 0 {
		cfg.WriteBuffer = c.WriteBuffer
	}
	if c.TempDir != "" {
		cfg.TempDir = c.TempDir
	}
}

func (c *logConfig) writer() io.WriteCloser {
	if c.File == "" {
		return nopCloser{os.Stderr}
	}
	size := c.MaxSize
	if size <= 0 {
		size = 10
	}
	return &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    size,
		MaxBackups: c.MaxBackups,
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
