package main

import (
	"encoding/xml"
	"flag"
	"log"
	"os"

	"github.com/6d7a/xmlemit"
)

func main() {
	var err error
	var script Script
	var indent, verbose bool
	var options []xmlemit.Option

	flag.BoolVar(&indent, "indent", false, "Use default indenter")
	flag.BoolVar(&verbose, "verbose", false, "Dump each event to stderr before writing")
	flag.Parse()

	if indent {
		options = append(options, xmlemit.WithIndent())
	}

	reader := os.Stdin
	err = xml.NewDecoder(reader).Decode(&script)
	if err != nil {
		log.Fatal(err)
	}

	script.Verbose = verbose
	s := &script
	if err = s.Run(os.Stdout, options...); err != nil {
		log.Fatal(err)
	}
}
