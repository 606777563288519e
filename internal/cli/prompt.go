package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ytget/input-collector/internal/collect"
	"github.com/ytget/input-collector/internal/config"
)

// TerminalPrompter asks collection questions on a text stream
type TerminalPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminalPrompter creates a prompter reading answers from in
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ConfirmFolder asks whether all files in dir should be added
func (p *TerminalPrompter) ConfirmFolder(ctx context.Context, dir string) (collect.Choice, error) {
	fmt.Fprintf(p.out, "\nSelect all files in this folder?\n  %s\n", dir)
	return p.ask(ctx, true)
}

// ConfirmReplace asks whether candidate should replace the listed existing entry
func (p *TerminalPrompter) ConfirmReplace(ctx context.Context, existing, candidate string, canAbort bool) (collect.Choice, error) {
	fmt.Fprintf(p.out, "\nA file with the same name is already listed. Replace it?\n  %s\n    to\n  %s\n", existing, candidate)
	return p.ask(ctx, canAbort)
}

// ask reads answers until one is valid
func (p *TerminalPrompter) ask(ctx context.Context, canAbort bool) (collect.Choice, error) {
	choices := "[y]es / [n]o"
	if canAbort {
		choices += " / [a]bort"
	}

	for {
		if err := ctx.Err(); err != nil {
			return collect.ChoiceAbort, err
		}

		fmt.Fprintf(p.out, "%s: ", choices)
		input, err := p.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			return collect.ChoiceAbort, fmt.Errorf("read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "y", "yes":
			return collect.ChoiceYes, nil
		case "n", "no":
			return collect.ChoiceNo, nil
		case "a", "abort":
			if canAbort {
				return collect.ChoiceAbort, nil
			}
		}
		fmt.Fprintln(p.out, "Invalid choice, please try again.")
	}
}

// policyPrompter answers from fixed policies and falls back to ask for the rest
type policyPrompter struct {
	folder  *collect.Choice
	replace *collect.Choice
	ask     collect.Prompter
}

func (p *policyPrompter) ConfirmFolder(ctx context.Context, dir string) (collect.Choice, error) {
	if p.folder != nil {
		return *p.folder, nil
	}
	return p.ask.ConfirmFolder(ctx, dir)
}

func (p *policyPrompter) ConfirmReplace(ctx context.Context, existing, candidate string, canAbort bool) (collect.Choice, error) {
	if p.replace != nil {
		return *p.replace, nil
	}
	return p.ask.ConfirmReplace(ctx, existing, candidate, canAbort)
}

// replaceChoice maps a replace policy to a fixed answer, nil for "ask"
func replaceChoice(policy string) *collect.Choice {
	var choice collect.Choice
	switch policy {
	case config.ReplaceAlways:
		choice = collect.ChoiceYes
	case config.ReplaceNever:
		choice = collect.ChoiceNo
	default:
		return nil
	}
	return &choice
}
