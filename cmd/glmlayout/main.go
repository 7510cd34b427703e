// Command glmlayout builds matrices in an explicit major order from the
// command line.
//
// Usage:
//
//	glmlayout [flags] [file ...]
//
// Each input line holds one command followed by 4, 9 or 16 components.
// Without file arguments, commands are read from stdin.
//
// Examples:
//
//	echo "row_major 1 2 3 4" | glmlayout
//	echo "row_major_mat 1 2 3 4 5 6 7 8 9" | glmlayout -yaml
//	glmlayout -prec 3 transforms.txt
//	glmlayout -list
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ekdennisek/glm"
	"github.com/ekdennisek/glm/internal/console"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type document struct {
	Source  string              `yaml:"source"`
	Command string              `yaml:"command"`
	Matrix  glm.Matrix[float64] `yaml:"matrix"`
}

type printer interface {
	print(source string, res console.Result) error
	close() error
}

type textPrinter struct {
	w     io.Writer
	prec  int
	first bool
}

func (p *textPrinter) print(_ string, res console.Result) error {
	if !p.first {
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	p.first = false
	_, err := fmt.Fprintln(p.w, res.Text(p.prec))
	return err
}

func (p *textPrinter) close() error { return nil }

type yamlPrinter struct {
	enc     *yaml.Encoder
	encoded bool
}

func (p *yamlPrinter) print(source string, res console.Result) error {
	p.encoded = true
	return p.enc.Encode(document{
		Source:  source,
		Command: res.Command,
		Matrix:  res.Matrix,
	})
}

// close flushes the stream. yaml.Encoder fails to close a stream that
// never started, so an empty output is left untouched.
func (p *yamlPrinter) close() error {
	if !p.encoded {
		return nil
	}
	return p.enc.Close()
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glmlayout", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asYAML := fs.Bool("yaml", false, "print results as YAML documents")
	prec := fs.Int("prec", -1, "digits after the decimal point in text output (-1: shortest exact)")
	list := fs.Bool("list", false, "list available commands")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: glmlayout [flags] [file ...]\n\n")
		fmt.Fprintf(stderr, "Builds row or column major matrices from command lines.\n")
		fmt.Fprintf(stderr, "Each line is a command followed by 4, 9 or 16 components.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  echo \"row_major 1 2 3 4\" | glmlayout\n")
		fmt.Fprintf(stderr, "  glmlayout -yaml transforms.txt\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, name := range console.Commands() {
			fmt.Fprintln(stdout, name)
		}
		return 0
	}

	var p printer
	if *asYAML {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		p = &yamlPrinter{enc: enc}
	} else {
		p = &textPrinter{w: stdout, prec: *prec, first: true}
	}

	c := console.New()
	failed := false

	process := func(name string, r io.Reader) error {
		sc := bufio.NewScanner(r)
		for line := 1; sc.Scan(); line++ {
			source := fmt.Sprintf("%s:%d", name, line)
			res, err := c.Run(sc.Text())
			if err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", source, err)
				failed = true
				continue
			}
			if res.Matrix == nil {
				continue
			}
			if err := p.print(source, res); err != nil {
				return err
			}
		}
		return sc.Err()
	}

	files := fs.Args()
	if len(files) == 0 {
		if err := process("<stdin>", stdin); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			failed = true
			continue
		}
		err = process(file, f)
		f.Close()
		if err != nil {
			fmt.Fprintf(stderr, "error: %s: %v\n", file, err)
			return 1
		}
	}

	if err := p.close(); err != nil {
		fmt.Fprintf(stderr, "error: failed to flush output: %v\n", err)
		return 1
	}
	if failed {
		return 1
	}
	return 0
}
