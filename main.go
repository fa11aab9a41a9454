package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	officeparser "office-parser/pkg/office-parser"

	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("office-parser", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "path to a YAML config file")
	delimiter := fs.String("delimiter", "", `delimiter between text fragments (default "\n")`)
	ignoreNotes := fs.Bool("ignore-notes", false, "drop speaker-note and annotation content")
	notesAtLast := fs.Bool("notes-at-last", false, "move notes content after the body text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: office-parser [-config file] [-delimiter string] [-ignore-notes] [-notes-at-last] <file> [file...]")
	}

	var cfg officeparser.Config
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", *configPath, err)
		}
	}
	if *delimiter != "" {
		cfg.NewlineDelimiter = *delimiter
	}
	if *ignoreNotes {
		cfg.IgnoreNotes = true
	}
	if *notesAtLast {
		cfg.PutNotesAtLast = true
	}

	parser := officeparser.NewOfficeParser(cfg)
	for _, path := range fs.Args() {
		text, err := parser.ExtractFile(path)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	}
	return nil
}
