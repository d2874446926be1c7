package cmd

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/uispec/pkg/component"
	"github.com/go-drift/uispec/pkg/spec"
)

func init() {
	RegisterCommand(&cobra.Command{
		Use:   "tree <file>",
		Short: "Print the component hierarchy of a document",
		Long: `Build the component hierarchy of a document, attach it to a host of the
configured size (host.width x host.height) and print it.`,
		Args: cobra.ExactArgs(1),
		RunE: runTree,
	})
}

func runTree(cmd *cobra.Command, args []string) error {
	s, err := spec.LoadFileErr(args[0], specOptions()...)
	if err != nil {
		return err
	}
	adapter, err := s.CreateHierarchy(component.CategoryComponent, spec.HostSize(cfg.Host))
	if err != nil {
		return err
	}
	size := adapter.RootSize()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, projectHeader())
	fmt.Fprintf(out, "%s: root %gx%g in %gx%g host\n", args[0], size.Width, size.Height, cfg.Host.Width, cfg.Host.Height)
	printTree(out, adapter.Root, 0)
	return nil
}

func printTree(w io.Writer, c component.Component, depth int) {
	horizontal, vertical := c.Sizing()
	line := fmt.Sprintf("%s%s [%s] %s x %s", strings.Repeat("  ", depth), typeName(c), c.Category().Name(), horizontal, vertical)
	if id := c.ID(); id != "" {
		line += fmt.Sprintf(" id=%q", id)
	}
	fmt.Fprintln(w, line)
	if parent, ok := c.(component.ParentComponent); ok {
		for _, child := range parent.Children() {
			printTree(w, child, depth+1)
		}
	}
}

func typeName(c component.Component) string {
	t := reflect.TypeOf(c)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
