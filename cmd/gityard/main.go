package main

import (
	"io"
	"os"

	"github.com/mikanfactory/gityard/internal/cli"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return cli.New(stdin, stdout, stderr).Run(args[1:])
}
