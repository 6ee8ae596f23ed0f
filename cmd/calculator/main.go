package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/zephyrtronium/calculator"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb      string
		nl, echo, verbose bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print postfix forms")
	flag.BoolVar(&verbose, "v", false, "log evaluation diagnostics")
	flag.Parse()

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	calc := calculator.New(calculator.WithLogger(logger))

	var exprs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		exprs, err = readExprs(f, nl)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}
	exprs = append(exprs, flag.Args()...)

	verb += "\n"
	for _, e := range exprs {
		if echo {
			p, err := calc.Postfix(e)
			if err != nil {
				log.Fatalf("%q: %v", e, err)
			}
			fmt.Printf("%v : ", p)
		}
		r, err := calc.Eval(e)
		if err != nil {
			log.Fatalf("%q: %v", e, err)
		}
		fmt.Printf(verb, r)
	}
}

// infile opens the input file. The result is nil with no error if there is
// no input file and std is false.
func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return io.NopCloser(os.Stdin), nil
	}
	return nil, nil
}

// readExprs reads expressions from r. If lines is true, each non-blank line
// is an expression. Otherwise, the entire input is one expression.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		s := strings.TrimSpace(string(b))
		if s == "" {
			return nil, nil
		}
		return []string{s}, nil
	}
	var v []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		v = append(v, s)
	}
	return v, sc.Err()
}
