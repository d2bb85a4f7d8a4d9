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
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/probename/apis"
	"dirpx.dev/probename/descriptor"
)

func newMethodsCmd(a *app) *cobra.Command {
	var className, methodName string

	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the declared methods of a catalog class with their descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.class(className)
			if err != nil {
				return err
			}
			for _, m := range c.DeclaredMethods() {
				if methodName != "" && m.Name() != methodName {
					continue
				}
				printMethod(cmd, m)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&className, "class", "", "fully-qualified class name")
	cmd.Flags().StringVar(&methodName, "method", "", "only list overloads of this method")
	_ = cmd.MarkFlagRequired("class")
	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	var className, methodName, desc, anno string

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the overload of a method matching a descriptor",
		Example: `  probename find --catalog catalog.yaml --class java.lang.String \
    --method substring --desc '(II)Ljava/lang/String;'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.class(className)
			if err != nil {
				return err
			}
			m := descriptor.FindMethod(c, methodName, desc)
			if m == nil {
				return fmt.Errorf("%w: %s.%s%s", ErrNoSuchMethod, className, methodName, desc)
			}
			if anno == "" {
				printMethod(cmd, m)
				return nil
			}

			text, ok := descriptor.MethodAnnotation(m, anno)
			if !ok {
				return fmt.Errorf("%w: @%s on %s.%s%s", ErrNoSuchAnnotation, anno, className, methodName, desc)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVar(&className, "class", "", "fully-qualified class name")
	cmd.Flags().StringVar(&methodName, "method", "", "method name")
	cmd.Flags().StringVar(&desc, "desc", "", "method descriptor, e.g. (II)Ljava/lang/String;")
	cmd.Flags().StringVar(&anno, "annotation", "", "print this method annotation instead of the method")
	for _, f := range []string{"class", "method", "desc"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func printMethod(cmd *cobra.Command, m apis.Method) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Name(), descriptor.MethodDescriptor(m))
}
