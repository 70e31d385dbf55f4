package main

import (
	"fmt"
	"os"

	"arthsaathi/internal/cli"
)

func main() {
	cli.LoadEnvFile()
	root, st := newRootCommand()
	if err := st.execute(root); err != nil {
		fmt.Fprintln(os.Stderr, red("error: "+err.Error()))
		os.Exit(1)
	}
}
