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
	"sort"

	"github.com/blinklabs-io/destcheck/uri"
	"github.com/spf13/cobra"
)

func uriCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uri <uri>",
		Short: "Parse a BIP21 payment URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := uri.NewParser(s.checker).Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "destination: %s\n", parsed.Destination)
			fmt.Fprintf(out, "type: %s\n", parsed.Target)
			if parsed.Amount != nil {
				fmt.Fprintf(
					out,
					"amount: %s (%d units)\n",
					parsed.Amount,
					parsed.AmountUnits(),
				)
			}
			if parsed.Label != "" {
				fmt.Fprintf(out, "label: %s\n", parsed.Label)
			}
			if parsed.Message != "" {
				fmt.Fprintf(out, "message: %s\n", parsed.Message)
			}
			keys := make([]string, 0, len(parsed.Extra))
			for key := range parsed.Extra {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(out, "%s: %s\n", key, parsed.Extra[key])
			}
			return nil
		},
	}
	return cmd
}
