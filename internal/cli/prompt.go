package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ConfirmFunc prompts the user for confirmation and returns true if confirmed.
type ConfirmFunc func(prompt string) (bool, error)

// PromptFunc prompts the user for free-text input and returns the response.
// It returns io.EOF once input is exhausted.
type PromptFunc func(prompt string) (string, error)

// SelectFunc prompts the user to select one option from a list. Returns 0-based index.
type SelectFunc func(title string, options []string) (int, error)

// PromptKit bundles all prompt function types for dependency injection.
type PromptKit struct {
	Prompt  PromptFunc
	Confirm ConfirmFunc
	Select  SelectFunc
}

// NewConfirmFunc creates a ConfirmFunc using huh's interactive confirm component.
func NewConfirmFunc() ConfirmFunc {
	return func(prompt string) (bool, error) {
		var result bool
		err := huh.NewConfirm().
			Title(prompt).
			Value(&result).
			Run()
		return result, err
	}
}

// NewPromptFunc creates a PromptFunc using huh's interactive input component.
func NewPromptFunc() PromptFunc {
	return func(prompt string) (string, error) {
		var result string
		err := huh.NewInput().
			Title(prompt).
			Value(&result).
			Run()
		if err == huh.ErrUserAborted {
			return "", io.EOF
		}
		return result, err
	}
}

// NewSelectFunc creates a SelectFunc using huh's interactive select component.
func NewSelectFunc() SelectFunc {
	return func(title string, options []string) (int, error) {
		var result int
		opts := make([]huh.Option[int], len(options))
		for i, o := range options {
			opts[i] = huh.NewOption(o, i)
		}
		err := huh.NewSelect[int]().
			Title(title).
			Options(opts...).
			Value(&result).
			Run()
		return result, err
	}
}

// NewPromptKit creates a PromptKit with huh-based interactive implementations.
func NewPromptKit() PromptKit {
	return PromptKit{
		Prompt:  NewPromptFunc(),
		Confirm: NewConfirmFunc(),
		Select:  NewSelectFunc(),
	}
}

// NewLinePromptKit creates a PromptKit that reads plain lines from in. It is
// used when stdin is not a terminal.
func NewLinePromptKit(in io.Reader, out io.Writer) PromptKit {
	r := bufio.NewReader(in)

	readLine := func(prompt string) (string, error) {
		if prompt != "" {
			_, _ = fmt.Fprint(out, prompt)
		}
		line, err := r.ReadString('\n')
		if err == io.EOF && line != "" {
			err = nil
		}
		return strings.TrimSpace(line), err
	}

	return PromptKit{
		Prompt: func(prompt string) (string, error) {
			if prompt != "" {
				prompt += " "
			}
			return readLine(prompt)
		},
		Confirm: func(prompt string) (bool, error) {
			answer, err := readLine(prompt + " [y/N] ")
			if err != nil && err != io.EOF {
				return false, err
			}
			answer = strings.ToLower(answer)
			return answer == "y" || answer == "yes", nil
		},
		Select: func(title string, options []string) (int, error) {
			_, _ = fmt.Fprintln(out, title)
			for i, o := range options {
				_, _ = fmt.Fprintf(out, "  %d) %s\n", i+1, o)
			}
			answer, err := readLine("> ")
			if err != nil && err != io.EOF {
				return 0, err
			}
			n, convErr := strconv.Atoi(answer)
			if convErr != nil || n < 1 || n > len(options) {
				return 0, fmt.Errorf("invalid selection %q", answer)
			}
			return n - 1, nil
		},
	}
}

// AlwaysYes returns a ConfirmFunc that always confirms.
func AlwaysYes() ConfirmFunc {
	return func(_ string) (bool, error) {
		return true, nil
	}
}

// promptKitFor picks huh prompts on a terminal and line prompts otherwise.
func promptKitFor(cmd *cobra.Command) PromptKit {
	if f, ok := cmd.InOrStdin().(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return NewPromptKit()
	}
	return NewLinePromptKit(cmd.InOrStdin(), cmd.OutOrStdout())
}

// confirmFor returns AlwaysYes when --yes was given.
func confirmFor(cmd *cobra.Command, kit PromptKit) ConfirmFunc {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return AlwaysYes()
	}
	return kit.Confirm
}
