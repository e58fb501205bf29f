// Package main runs Lua automation scripts against a composer model
// and prints the resulting content.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/composer"
	"github.com/dshills/composer/internal/script"
)

func main() {
	os.Exit(run())
}

func run() int {
	var output string
	var content string
	flag.StringVar(&output, "output", "html", "Output format: html, markdown, text, or tree")
	flag.StringVar(&content, "content", "", "Initial content as HTML")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: composer-script [flags] <script.lua>\n")
		flag.PrintDefaults()
		return 2
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	m := composer.NewComposerModel(composer.WithContent(content))
	r := script.NewRunner(m)
	defer r.Close()

	if err := r.Run(string(src)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch output {
	case "html":
		fmt.Println(m.GetContentAsHTML())
	case "markdown":
		fmt.Println(m.GetContentAsMarkdown())
	case "text":
		fmt.Println(m.GetContentAsPlainText())
	case "tree":
		fmt.Println(m.ToTree())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", output)
		return 2
	}
	return 0
}
