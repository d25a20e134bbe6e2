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
	"text/tabwriter"

	"github.com/blinklabs-io/destcheck/network"
	"github.com/spf13/cobra"
)

func networksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the predefined networks",
		Args:  cobra.NoArgs,
		// Listing does not need a checker
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSYMBOL\tHRP\tP2PKH\tP2SH\tWIF\tURI SCHEME")
			for _, params := range network.Networks() {
				fmt.Fprintf(
					w,
					"%s\t%s\t%s\t0x%02x\t0x%02x\t0x%02x\t%s\n",
					params.Name,
					params.Symbol,
					params.Bech32Hrp,
					params.PubKeyHashByte,
					params.ScriptHashByte,
					params.WifByte,
					params.URIScheme,
				)
			}
			return w.Flush()
		},
	}
	return cmd
}
