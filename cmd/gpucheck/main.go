// Package main provides the gpucheck CLI: a GPU installation verifier for the
// embedded tensor stack.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/gpucheck/internal/verify"
)

const version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("gpucheck %s\n", version)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
			fmt.Fprintln(os.Stderr, "Usage:")
			fmt.Fprintln(os.Stderr, "  gpucheck          run the GPU installation test")
			fmt.Fprintln(os.Stderr, "  gpucheck version  show version")
			os.Exit(2)
		}
	}

	acc := verify.NewAccelerator()
	ok := verify.Run(os.Stdout, acc)
	acc.Release()

	if !ok {
		os.Exit(1)
	}
}
