package main

import (
	"os"

	"github.com/arthur-debert/specedit/cmd/specedit"
)

func main() {
	rootCmd := specedit.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		specedit.RenderError(rootCmd, err)
		os.Exit(1)
	}
}
