package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jwowen/ccsat/dimacs"
	"github.com/jwowen/ccsat/render"
	"github.com/jwowen/ccsat/sat"
)

var flagGzip = flag.Bool(
	"gzip",
	false,
	"treat every instance file as gzip-compressed",
)

type config struct {
	instanceFiles []string
	gzip          bool
}

func parseConfig() (*config, error) {
	flag.Parse()
	if flag.NArg() == 0 {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFiles: flag.Args(),
		gzip:          *flagGzip,
	}, nil
}

// run solves every instance file in cfg, printing the verdict for each.
// It returns an error the first time a file cannot be opened or parsed;
// files already solved before that point still had their output printed.
func run(cfg *config) error {
	for _, path := range cfg.instanceFiles {
		if err := solveFile(path, cfg.gzip); err != nil {
			return err
		}
	}
	return nil
}

func solveFile(path string, gzipped bool) error {
	instance, err := dimacs.ReadInstance(path, gzipped)
	if err != nil {
		return fmt.Errorf("could not parse instance: %w", err)
	}

	fmt.Printf("c file:       %s\n", path)
	fmt.Printf("c variables:  %d\n", instance.Variables)
	fmt.Printf("c clauses:    %d\n", len(instance.Clauses))

	s := sat.NewSolver()
	if s.Solve(instance.Clauses) {
		fmt.Println("sat")
		model := s.GetModel()
		fmt.Println(render.Model(model))
		if instance.Clauses.Eval(model) {
			fmt.Println("model validated")
		} else {
			fmt.Println("invalid model")
		}
		return nil
	}

	fmt.Println("unsat")
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [-gzip] FILE [FILE ...]\n", os.Args[0])
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}
