// Command sexpr is a demonstration driver for the sexpr package: it parses a
// document given on the command line (or a built-in sample), prints the tree
// or its numeric result, and can keep an evaluation history in SQLite.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/sexprkit/sexpr"
)

const defaultDocument = `( (one 1) (two 2) (three 3) )`

func main() {
	app := &cli.App{
		Name:  "sexpr",
		Usage: "parse and evaluate s-expressions",
		Commands: []*cli.Command{
			parseCommand(),
			evalCommand(),
			replCommand(),
			historyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func argument(c *cli.Context) string {
	if c.Args().Len() > 0 {
		return strings.Join(c.Args().Slice(), " ")
	}
	return defaultDocument
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a document and print its tree",
		ArgsUsage: "[expression]",
		Action: func(c *cli.Context) error {
			v, err := sexpr.ParseString(argument(c))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Println(v)
			return nil
		},
	}
}

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "evaluate an operator-headed expression",
		ArgsUsage: "[expression]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "record the result in a history database at `PATH`",
			},
		},
		Action: func(c *cli.Context) error {
			expr := argument(c)

			v, err := sexpr.ParseString(expr)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			n, err := sexpr.Eval(v)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			fmt.Printf("%g\n", n)

			if path := c.String("db"); path != "" {
				h, err := openHistory(path)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				defer h.Close()

				if err := h.record(expr, n); err != nil {
					return cli.Exit(err.Error(), 1)
				}
			}
			return nil
		},
	}
}

func replCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "read expressions from stdin, print tree and result",
		Action: func(c *cli.Context) error {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				v, err := sexpr.ParseString(line)
				if err != nil {
					fmt.Fprintf(c.App.Writer, "parse error: %v\n", err)
					continue
				}
				fmt.Fprintln(c.App.Writer, v)

				n, err := sexpr.Eval(v)
				if err != nil {
					fmt.Fprintf(c.App.Writer, "eval error: %v\n", err)
					continue
				}
				fmt.Fprintf(c.App.Writer, "= %g\n", n)
			}
			return scanner.Err()
		},
	}
}

func historyCommand() *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "list recorded evaluations, most recent first",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "db",
				Usage:    "history database `PATH`",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "maximum number of entries",
				Value: 20,
			},
		},
		Action: func(c *cli.Context) error {
			h, err := openHistory(c.String("db"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			defer h.Close()

			entries, err := h.list(c.Int("limit"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			for _, e := range entries {
				fmt.Fprintf(c.App.Writer, "%d\t%s\t%s = %g\n",
					e.ID, e.CreatedAt.Format("2006-01-02 15:04:05"), e.Expr, e.Result)
			}
			return nil
		},
	}
}
