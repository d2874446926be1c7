package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/uispec/pkg/spec"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "templates <file>",
		Short: "List the templates a document declares",
		Args:  cobra.ExactArgs(1),
		RunE:  runTemplates,
	})
}

func runTemplates(cmd *cobra.Command, args []string) error {
	s, err := spec.LoadFileErr(args[0], specOptions()...)
	if err != nil {
		return err
	}
	for _, name := range s.Templates().Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
