package menu

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/agentstation/bibliotheque/pkg/constants"
)

// Terminal is a Prompter backed by liner with line editing and history.
type Terminal struct {
	state   *liner.State
	history string
}

// NewTerminal takes over the terminal. Call Close to restore it and save
// history.
func NewTerminal() *Terminal {
	t := &Terminal{state: liner.NewLiner(), history: historyFile()}
	t.state.SetCtrlCAborts(true)
	t.state.SetCompleter(completer)

	if t.history != "" {
		if f, err := os.Open(t.history); err == nil {
			_, _ = t.state.ReadHistory(f)
			_ = f.Close()
		}
	}
	return t
}

// Prompt implements Prompter.
func (t *Terminal) Prompt(prompt string) (string, error) {
	return t.state.Prompt(prompt)
}

// AppendHistory implements Prompter.
func (t *Terminal) AppendHistory(item string) {
	t.state.AppendHistory(item)
}

// Close saves history and restores the terminal.
func (t *Terminal) Close() error {
	if t.history != "" {
		if f, err := os.Create(t.history); err == nil {
			_, _ = t.state.WriteHistory(f)
			_ = f.Close()
		}
	}
	return t.state.Close()
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, constants.HistoryFileName)
}

// completer completes the word commands; numbers need no completion.
func completer(line string) []string {
	var out []string
	for _, word := range []string{"quit", "exit", "reload"} {
		if line != "" && strings.HasPrefix(word, strings.ToLower(line)) {
			out = append(out, word)
		}
	}
	return out
}
