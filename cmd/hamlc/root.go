package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/elioetibr/haml-go/internal/config"
	"github.com/elioetibr/haml-go/internal/logging"
	"github.com/elioetibr/haml-go/pkg/engine"
	"github.com/elioetibr/haml-go/pkg/herrors"
	"github.com/elioetibr/haml-go/pkg/renderer"
)

var (
	formatFlag string
	indentFlag int
	verbose    bool
)

func init() {
	RootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output format: html5, html4, xhtml (or xhtml1transitional, xhtml1strict)")
	RootCmd.Flags().IntVarP(&indentFlag, "indent", "i", 0, "spaces per indentation level")
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "enable debug logging")
	RootCmd.AddCommand(VersionCmd)
}

// RootCmd is the main command for the 'hamlc' binary: it compiles a
// HAML file, or stdin, to HTML on stdout.
var RootCmd = &cobra.Command{
	Use:   "hamlc [file]",
	Short: "`hamlc` compiles HAML templates to HTML",
	Long:  "`hamlc` compiles HAML templates to HTML",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		r, err := inputReader(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if closer, ok := r.(io.Closer); ok {
			defer closer.Close()
		}

		level := logrus.InfoLevel
		if verbose {
			level = logrus.DebugLevel
		}
		log := logging.New(os.Stderr, level)

		cfg, err := config.Load(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
			os.Exit(1)
		}
		if formatFlag != "" {
			cfg.Format = formatFlag
		}
		if indentFlag > 0 {
			cfg.Indent = indentFlag
		}

		opts := engine.Options{
			Render: renderer.Options{Format: config.ResolveFormat(cfg.Format), Indent: cfg.Indent},
			Logger: log,
		}

		if err := engine.Compile(r, os.Stdout, opts); err != nil {
			if herr, ok := err.(*herrors.Error); ok {
				fmt.Printf("syntax error: %s\n", herr.Error())
				return
			}
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	},
}

// inputReader resolves the compiler's source: the named file argument
// if given, otherwise stdin when it is piped.
func inputReader(args []string) (io.Reader, error) {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		return f, nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		return os.Stdin, nil
	}
	return nil, fmt.Errorf("no input provided (pass a file or pipe HAML source on stdin)")
}
