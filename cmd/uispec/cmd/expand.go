package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/spec"
)

var (
	expandTemplate string
	expandParams   []string
)

func init() {
	expandCmd := &cobra.Command{
		Use:   "expand <file> --template <name> [--param key=value]...",
		Short: "Expand a single template with parameters",
		Long: `Expand one template of a document with the given parameters and print the
resulting component tree. Templates that declare template-child slots cannot
be expanded this way.

Usage:
  uispec expand ui/shop.xml --template price-row --param price=12 --param item=Apple`,
		Args: cobra.ExactArgs(1),
		RunE: runExpand,
	}
	expandCmd.Flags().StringVarP(&expandTemplate, "template", "t", "", "template name (required)")
	expandCmd.Flags().StringArrayVarP(&expandParams, "param", "p", nil, "template parameter as key=value (repeatable)")
	_ = expandCmd.MarkFlagRequired("template")
	RegisterCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	params, err := parseParams(expandParams)
	if err != nil {
		return err
	}
	s, err := spec.LoadFileErr(args[0], specOptions()...)
	if err != nil {
		return err
	}
	c, err := s.ExpandTemplateParams(component.CategoryComponent, expandTemplate, params)
	if err != nil {
		return err
	}
	printTree(cmd.OutOrStdout(), c, 0)
	return nil
}

func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q (want key=value)", pair)
		}
		params[key] = value
	}
	return params, nil
}
