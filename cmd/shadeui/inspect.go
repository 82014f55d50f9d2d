package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jimmyps/shadeui/internal/config"
	"github.com/jimmyps/shadeui/internal/inspect"
	"github.com/jimmyps/shadeui/pkg/compiler"
)

func newInspectCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <definition.yaml>",
		Short: "Browse a compiled option document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}

	return cmd
}

func runInspect(path string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("inspect requires an interactive terminal; use 'shadeui compile %s' instead", path)
	}

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

	title := fmt.Sprintf("%s: %s chart", filepath.Base(path), def.Kind)
	model := inspect.NewModel(title, doc)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspect UI failed: %w", err)
	}
	return nil
}
