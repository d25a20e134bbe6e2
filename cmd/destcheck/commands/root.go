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
	"errors"
	"log/slog"

	"github.com/blinklabs-io/destcheck"
	"github.com/spf13/cobra"
)

var errInvalidInput = errors.New("one or more inputs are invalid")

type state struct {
	network string
	logger  *slog.Logger
	checker *destcheck.Checker
}

// NewRootCommand returns the destcheck command tree
func NewRootCommand() *cobra.Command {
	s := &state{}
	root := &cobra.Command{
		Use:          "destcheck",
		Short:        "Validate addresses, payment codes and payment URIs",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if s.network != "" {
				cfg.Network = s.network
			}
			params, err := cfg.NetworkParams()
			if err != nil {
				return err
			}
			s.logger, err = cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s.checker, err = destcheck.New(
				params,
				destcheck.WithLogger(s.logger),
			)
			return err
		},
	}
	root.PersistentFlags().StringVarP(
		&s.network,
		"network",
		"n",
		"",
		"network name (default from DESTCHECK_NETWORK, then bitcoinblu)",
	)
	root.AddCommand(
		addressCmd(s),
		paymentCodeCmd(s),
		uriCmd(s),
		networksCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}
