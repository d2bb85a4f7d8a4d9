/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/
package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/probename/annotation"
)

// parsedParam keeps parameters in written order in the JSON output.
type parsedParam struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

type parsedAnnotation struct {
	Class  string        `json:"class"`
	Params []parsedParam `json:"params"`
}

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <literal>",
		Short: "Parse an annotation literal and print it as JSON",
		Example: `  probename parse '@org.springframework.web.bind.annotation.RequestMapping(value=[/customers], method=[GET])'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			ann := annotation.Parse(text)
			if ann == nil {
				return fmt.Errorf("%w: %q", ErrNotAnnotation, text)
			}

			out := parsedAnnotation{Class: ann.Class(), Params: []parsedParam{}}
			for _, k := range ann.ParamKeys() {
				out.Params = append(out.Params, parsedParam{Key: k, Values: ann.Param(k)})
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}
