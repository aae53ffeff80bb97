package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dgallion1/crfcf/internal/ast"
	"github.com/dgallion1/crfcf/internal/parser"
	"github.com/dgallion1/crfcf/internal/render"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "crfcf",
		Short: "CRFCF document tooling",
		Long: `crfcf parses CRFCF plain-text documents into structured trees
and renders them to other formats.

Documents are read from a file argument or from stdin when the
argument is "-" or absent.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(renderCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a document and print its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseInput(args)
			if err != nil {
				return err
			}
			switch format {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(tree)
			case "yaml":
				out, err := yaml.Marshal(tree)
				if err != nil {
					return err
				}
				_, err = os.Stdout.Write(out)
				return err
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a document's structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseInput(args); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func renderCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a document to Markdown or HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseInput(args)
			if err != nil {
				return err
			}
			switch format {
			case "markdown":
				fmt.Print(render.Markdown(tree))
				return nil
			case "html":
				out, err := render.HTML(tree)
				if err != nil {
					return err
				}
				fmt.Print(out)
				return nil
			default:
				return fmt.Errorf("unknown format %q (want markdown or html)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "markdown", "output format: markdown or html")
	return cmd
}

// parseInput reads the document named by args (stdin when absent or "-")
// and parses it. Structural violations come back with the offending line
// number in the message.
func parseInput(args []string) (*ast.Node, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}

	tree, err := parser.Parse(string(data))
	if err != nil {
		var synErr *parser.SyntaxError
		if errors.As(err, &synErr) {
			return nil, fmt.Errorf("invalid document: %s", synErr.Error())
		}
		return nil, err
	}
	return tree, nil
}
