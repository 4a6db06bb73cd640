// Command docsync synchronises documentation changes from a git
// repository into a LightRAG knowledge base.
package main

import (
	"os"

	"github.com/custodia-labs/docsync-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
