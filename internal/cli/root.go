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
// Package cli implements the probename command line.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/catalog"
)

// Configuration keys, also readable as PROBENAME_<KEY> environment variables.
const (
	keyCatalog   = "catalog"
	keyFormatter = "formatter"
	keyTemplate  = "template"
	keyBoundary  = "boundary"
	keyVerbose   = "verbose"
)

// app carries state shared by all subcommands of one root command.
type app struct {
	v       *viper.Viper
	cfgFile string
	log     *zap.Logger
}

// NewRootCmd builds the probename command tree.
func NewRootCmd(version string) *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "probename",
		Short: "Name instrumented REST methods from their annotations",
		Long: `probename parses annotation literals, encodes JVM method descriptors
and formats metric names for Spring MVC and JAX-RS endpoints.

Classes are described in a YAML catalog:

  classes:
    - name: com.basaki.controller.BookController
      annotations: ["@org.springframework.web.bind.annotation.RestController(value=[/books])"]
      methods:
        - name: read
          returns: com.basaki.model.Book
          params: [java.util.UUID]`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	cmd.SetVersionTemplate(`{{printf "probename version %s\n" .Version}}`)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	flags.String(keyCatalog, "", "class catalog file (YAML)")
	flags.BoolP(keyVerbose, "v", false, "enable debug logging")
	_ = a.v.BindPFlag(keyCatalog, flags.Lookup(keyCatalog))
	_ = a.v.BindPFlag(keyVerbose, flags.Lookup(keyVerbose))

	cmd.AddCommand(
		newParseCmd(a),
		newMethodsCmd(a),
		newFindCmd(a),
		newFormatCmd(a),
		newVersionCmd(version),
	)
	return cmd
}

// Execute runs the command line and exits non-zero on error.
func Execute(version string) {
	cmd := NewRootCmd(version)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// init reads the config file and environment, then builds the logger.
func (a *app) init() error {
	a.v.SetEnvPrefix("PROBENAME")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if a.v.GetBool(keyVerbose) {
		log, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		a.log = log
	}
	return nil
}

// class loads the catalog and returns the named class.
func (a *app) class(name string) (apis.Class, error) {
	path := a.v.GetString(keyCatalog)
	if path == "" {
		return nil, fmt.Errorf("no catalog: set --%s, %q in the config file or PROBENAME_CATALOG", keyCatalog, keyCatalog)
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Debug("catalog loaded", zap.String("path", path), zap.Int("classes", cat.Len()))

	c := cat.Class(name)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchClass, name)
	}
	return c, nil
}
