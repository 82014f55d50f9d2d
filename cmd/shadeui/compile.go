package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jimmyps/shadeui/internal/config"
	"github.com/jimmyps/shadeui/internal/logger"
	"github.com/jimmyps/shadeui/pkg/compiler"
)

type compileOptions struct {
	out     string
	compact bool
}

var (
	compileTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	compileOkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	compileDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func newCompileCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := &compileOptions{}

	cmd := &cobra.Command{
		Use:   "compile <definition.yaml>",
		Short: "Compile a chart definition into a renderer option document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runLog := log
			if flags.verbose {
				if verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true}); err == nil {
					runLog = verbose
				}
			}
			return runCompile(cmd, args[0], opts, runLog)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the option document to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "Emit compact JSON")

	return cmd
}

func runCompile(cmd *cobra.Command, path string, opts *compileOptions, log *logger.Logger) error {
	def, err := config.ParseDefinition(path)
	if err != nil {
		return err
	}

	chart, rows, err := def.Build()
	if err != nil {
		return err
	}

	doc, err := compiler.Compile(chart, rows)
	if err != nil {
		return err
	}

	var data []byte
	if opts.compact {
		data, err = json.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal option document: %w", err)
	}
	data = append(data, '\n')

	log.WithFields(map[string]any{
		"path":   path,
		"kind":   def.Kind,
		"series": len(def.Series),
	}).Debug("definition compiled")

	if opts.out != "" {
		if err := os.WriteFile(opts.out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.out, err)
		}
		printCompileSummary(cmd, def, opts.out)
		return nil
	}

	_, _ = cmd.OutOrStdout().Write(data)
	return nil
}

// printCompileSummary writes a short styled summary when attached to a
// terminal, plain text otherwise.
func printCompileSummary(cmd *cobra.Command, def *config.Definition, out string) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))

	title := fmt.Sprintf("%s chart compiled", def.Kind)
	detail := fmt.Sprintf("%d series, %d rows written to %s", len(def.Series), len(def.Data), out)
	if styled {
		title = compileTitleStyle.Render(title)
		detail = compileDimStyle.Render(detail)
	}
	status := "ok"
	if styled {
		status = compileOkStyle.Render("ok")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n%s\n", status, title, detail)
}
