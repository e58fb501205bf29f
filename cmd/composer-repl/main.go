// Package main is a line-oriented JSON host for the composer. Each
// stdin line is one request, each stdout line is one response, which
// makes it usable as a subprocess bridge from any language.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dshills/composer"
	"github.com/dshills/composer/internal/wire"
)

func main() {
	os.Exit(run())
}

func run() int {
	h := wire.NewHandler(composer.NewComposerModel())

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fmt.Fprintln(out, h.Handle(line))
		if err := out.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: write failed: %v\n", err)
			return 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
		return 1
	}
	return 0
}
