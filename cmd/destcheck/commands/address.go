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

	"github.com/spf13/cobra"
)

func addressCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address <address>...",
		Short: "Validate addresses for the selected network",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := s.checker.AddressValidator()
			out := cmd.OutOrStdout()
			var failed bool
			for _, arg := range args {
				dest, err := validator.Decode(arg)
				s.logger.Debug(
					"checked address",
					"address", arg,
					"valid", err == nil,
				)
				if err != nil {
					failed = true
					fmt.Fprintf(out, "%s\tinvalid\t%s\n", arg, err)
					continue
				}
				fmt.Fprintf(out, "%s\tvalid\t%s\n", arg, dest)
			}
			if failed {
				return errInvalidInput
			}
			return nil
		},
	}
	return cmd
}
