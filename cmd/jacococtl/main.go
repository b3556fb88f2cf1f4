package main

import (
	"fmt"
	"os"

	"github.com/jvmtools/jacococtl/cmd/jacococtl/app"
)

func main() {
	if err := app.NewJacococtlCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
