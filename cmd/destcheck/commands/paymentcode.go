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

func paymentCodeCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "paymentcode <code>...",
		Aliases: []string{"pc"},
		Short:   "Validate BIP47 and BIP352 payment codes",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			validator := s.checker.PaymentCodeValidator()
			out := cmd.OutOrStdout()
			var failed bool
			for _, arg := range args {
				scheme, err := validator.Scheme(arg)
				s.logger.Debug(
					"checked payment code",
					"code", arg,
					"valid", err == nil,
				)
				if err != nil {
					failed = true
					fmt.Fprintf(out, "%s\tinvalid\n", arg)
					continue
				}
				fmt.Fprintf(out, "%s\tvalid\t%s\n", arg, scheme)
			}
			if failed {
				return errInvalidInput
			}
			return nil
		},
	}
	return cmd
}
