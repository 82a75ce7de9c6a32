// gotdlib - Typed Go bindings for the TDLib JSON interface.
// Copyright (C) 2026 Sumner Evans
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	_ "embed"
	"os"

	"github.com/go-faster/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"go.mau.fi/gotdlib/pkg/tdlib/auth"
)

//go:embed example-config.yaml
var ExampleConfig string

type Config struct {
	TDLib          auth.Parameters `yaml:"tdlib"`
	Relay          string          `yaml:"relay"`
	TDLibVerbosity int32           `yaml:"tdlib_verbosity"`
	LogLevel       string          `yaml:"log_level"`
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	// Unset keys keep the values of the example config.
	if err := yaml.Unmarshal([]byte(ExampleConfig), &cfg); err != nil {
		return nil, errors.Wrap(err, "parse example config")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.TDLib.APIHash == "tjyd5yge35lbodk1xwzw2jstp90k55qz" {
		return errors.New("api_hash is required")
	}
	if err := c.TDLib.Validate(); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}
