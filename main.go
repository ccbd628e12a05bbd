package main

// implements the lambda command line: a repl, a file runner, and two
// debugging views of the front end.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"lambda/eval"
	"lambda/lexer"
	"lambda/parser"
)

var VERSION string

var errorColor = color.New(color.FgRed)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "lambda",
		Usage:     "evaluate a tiny language of integers, booleans and closures",
		Version:   sliceVersion(VERSION),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config file",
				Value: defaultConfigPath(),
			},
			&cli.IntFlag{
				Name:  "max-depth",
				Usage: "maximum number of nested function calls",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured output",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug output to stderr",
			},
		},
		Action: replAction,
		Commands: []*cli.Command{
			{
				Name:   "repl",
				Usage:  "start an interactive session (the default)",
				Action: replAction,
			},
			{
				Name:      "run",
				Usage:     "run files line by line, continuing past errors",
				ArgsUsage: "FILE...",
				Action:    runAction,
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of an expression",
				ArgsUsage: "EXPR",
				Action:    tokensAction,
			},
			{
				Name:      "ast",
				Usage:     "print the syntax tree of a statement",
				ArgsUsage: "EXPR",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dump",
						Usage: "dump the Go structure of the tree",
					},
				},
				Action: astAction,
			},
		},
	}
}

// settings merges the config file with the flags of c.
func settings(c *cli.Context) (Config, error) {
	cfg, err := LoadConfig(c.String("config"), c.IsSet("config"))
	if err != nil {
		return cfg, err
	}
	if c.IsSet("max-depth") {
		if d := c.Int("max-depth"); d <= 0 || d > eval.MaxDepthLimit {
			return cfg, errors.Errorf("--max-depth must be between 1 and %d, got %d", eval.MaxDepthLimit, d)
		}
		cfg.MaxDepth = c.Int("max-depth")
	}
	if c.Bool("no-color") {
		cfg.NoColor = true
	}
	if c.Bool("verbose") {
		cfg.Verbose = true
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}

func newLogger(cfg Config, w io.Writer) *logger.Logger {
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   syncWriter{w},
		IncludeDebug: cfg.Verbose,
	})
}

func newSession(cfg Config, log *logger.Logger, filename string) (*eval.Session, error) {
	return eval.NewSession(eval.Options{
		Filename:  filename,
		MaxDepth:  cfg.MaxDepth,
		CacheSize: cfg.CacheSize,
		Logger:    log,
	})
}

func replAction(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	s, err := newSession(cfg, newLogger(cfg, c.App.ErrWriter), "<stdin>")
	if err != nil {
		return err
	}
	return repl(cfg, s, c.App.Writer, c.App.ErrWriter)
}

func runAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("run: expected at least one file")
	}
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg, c.App.ErrWriter)
	var result *multierror.Error
	for _, path := range c.Args().Slice() {
		if err := runFile(cfg, log, path, c.App.Writer, c.App.ErrWriter); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// runFile runs one file in its own session, echoing each line before its
// result like the interactive session would print it.
func runFile(cfg Config, log *logger.Logger, path string, out, errOut io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	s, err := newSession(cfg, log, path)
	if err != nil {
		return err
	}
	log.Infof("running %s", path)
	err = s.RunLines(f, func(_ int, line string, v eval.Value, err error) {
		fmt.Fprintf(out, "Executing: %s\n", line)
		printResult(out, errOut, v, err)
	})
	var merr *multierror.Error
	if errors.As(err, &merr) {
		log.Warningf("%s: %d line(s) failed", path, len(merr.Errors))
		return errors.Errorf("%s: %d line(s) failed", path, len(merr.Errors))
	}
	return err
}

func tokensAction(c *cli.Context) error {
	tokens, err := lexer.Tokenize(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(c.App.Writer)
	table.SetHeader([]string{"Kind", "Lexeme", "Literal", "Line", "Column"})
	for _, tok := range tokens {
		if tok.Kind == lexer.EOF {
			continue
		}
		lit := ""
		if tok.Literal != nil {
			lit = fmt.Sprint(tok.Literal)
		}
		table.Append([]string{
			tok.Kind.String(),
			tok.Lexeme,
			lit,
			fmt.Sprint(tok.Line),
			fmt.Sprint(tok.Column),
		})
	}
	table.Render()
	return nil
}

func astAction(c *cli.Context) error {
	tokens, err := lexer.Tokenize(strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}
	node, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	if c.Bool("dump") {
		spew.Fdump(c.App.Writer, node)
		return nil
	}
	fmt.Fprintln(c.App.Writer, node)
	return nil
}

// printResult writes v to out, or err in red to errOut.
func printResult(out, errOut io.Writer, v eval.Value, err error) {
	if err != nil {
		errorColor.Fprintln(errOut, err)
		return
	}
	if v != nil {
		fmt.Fprintln(out, v)
	}
}

func sliceVersion(v string) string {
	if v == "" {
		return "dev"
	}
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

// syncWriter adapts an io.Writer to logger.SyncWriter.
type syncWriter struct {
	io.Writer
}

func (w syncWriter) Sync() error {
	if s, ok := w.Writer.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
