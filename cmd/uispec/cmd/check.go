package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/spec"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "check <file>...",
		Short: "Validate owo-ui documents",
		Long: `Load each document, expand its templates and build the component
hierarchy. Every failure is reported; the command fails if any document
does not parse.

Usage:
  uispec check ui/settings.xml
  uispec check ui/*.xml`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	})
}

func runCheck(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), projectHeader())
	failed := 0
	for _, path := range args {
		if err := checkFile(cmd.OutOrStdout(), path); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}

func checkFile(out io.Writer, path string) error {
	s, err := spec.LoadFileErr(path, specOptions()...)
	if err != nil {
		return err
	}
	root, err := s.ParseComponentTree(component.CategoryComponent)
	if err != nil {
		return err
	}
	count := 0
	component.Walk(root, func(component.Component) bool {
		count++
		return true
	})
	fmt.Fprintf(out, "ok   %s (%d components, %d templates)\n", path, count, s.Templates().Len())
	return nil
}
