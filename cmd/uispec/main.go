// Command uispec validates and inspects owo-ui documents.
package main

import (
	"os"

	"github.com/go-drift/uispec/cmd/uispec/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
