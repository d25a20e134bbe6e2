// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/blinklabs-io/destcheck/network"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "destcheck"

// Config is read from DESTCHECK_* environment variables
type Config struct {
	Network  string `envconfig:"NETWORK" default:"bitcoinblu"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env vars: %w", err)
	}
	return cfg, nil
}

// NetworkParams returns the predefined network named by the config
func (c Config) NetworkParams() (network.Params, error) {
	params := network.NetworkByName(c.Network)
	if params == network.NetworkInvalid {
		return network.Params{}, fmt.Errorf(
			"invalid network specified: %s",
			c.Network,
		)
	}
	return params, nil
}

// Logger returns a text logger writing to w at the configured level
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return slog.New(
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	), nil
}
