package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/services"
)

// StateCmd inspects and clears persisted state
type StateCmd struct {
	Show  StateShowCmd  `cmd:"show" help:"Print the pending transfer and saved dialog geometry" default:"1"`
	Clear StateClearCmd `cmd:"clear" help:"Delete persisted records"`
	Theme StateThemeCmd `cmd:"theme" help:"Set the dialog theme preference"`
}

// StateShowCmd prints persisted state
type StateShowCmd struct {
	Format string `help:"Output format: yaml or json" enum:"yaml,json" default:"yaml"`
}

// stateView is the printed form of the persisted records
type stateView struct {
	PendingTransfer *domain.PendingTransfer `json:"pending_transfer" yaml:"pending_transfer"`
	Theme           string                  `json:"theme,omitempty" yaml:"theme,omitempty"`
	WindowState     *domain.WindowState     `json:"window_state" yaml:"window_state"`
}

// Run executes the show command
func (s *StateShowCmd) Run(cli *CLI) error {
	store, err := cli.Container.StoreService()
	if err != nil {
		return err
	}

	view, err := loadStateView(context.Background(), store)
	if err != nil {
		return err
	}
	return writeStateView(os.Stdout, view, s.Format)
}

func loadStateView(ctx context.Context, store *services.StoreService) (stateView, error) {
	var view stateView
	var err error

	if view.PendingTransfer, err = store.PendingTransfer(ctx); err != nil {
		return view, fmt.Errorf("failed to read pending transfer: %w", err)
	}
	if view.WindowState, err = store.WindowState(ctx); err != nil {
		return view, fmt.Errorf("failed to read window state: %w", err)
	}
	if view.Theme, err = store.Theme(ctx); err != nil {
		logging.Logger.Warn("Failed to read theme", "error", err)
	}
	return view, nil
}

func writeStateView(w io.Writer, view stateView, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return enc.Close()
}

// StateClearCmd deletes persisted records
type StateClearCmd struct {
	Transfer bool `help:"Only clear the pending transfer"`
	Window   bool `help:"Only clear the saved dialog geometry"`
	Yes      bool `help:"Do not ask for confirmation" short:"y"`
}

// confirmClear asks before deleting records. Without a terminal it does not ask.
var confirmClear = func(targets string) (bool, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return true, nil
	}

	confirmed := false
	err := newClearConfirmForm(targets, &confirmed).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return confirmed, err
}

func newClearConfirmForm(targets string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Clear %s?", targets)).
				Description("A save dialog that is still open will no longer find its tabs.").
				Value(confirmed).
				Affirmative("Clear").
				Negative("Keep"),
		),
	)
}

// Run executes the clear command
func (s *StateClearCmd) Run(cli *CLI) error {
	all := !s.Transfer && !s.Window
	clearTransfer := all || s.Transfer
	clearWindow := all || s.Window

	if !s.Yes {
		ok, err := confirmClear(clearTargets(clearTransfer, clearWindow))
		if err != nil {
			return fmt.Errorf("failed to confirm: %w", err)
		}
		if !ok {
			fmt.Println("Nothing cleared.")
			return nil
		}
	}

	store, err := cli.Container.StoreService()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if clearTransfer {
		if err := store.ClearPendingTransfer(ctx); err != nil {
			return fmt.Errorf("failed to clear pending transfer: %w", err)
		}
		fmt.Println("Pending transfer cleared.")
	}
	if clearWindow {
		if err := store.ClearWindowState(ctx); err != nil {
			return fmt.Errorf("failed to clear window state: %w", err)
		}
		fmt.Println("Dialog geometry cleared.")
	}
	return nil
}

func clearTargets(transfer, window bool) string {
	switch {
	case transfer && window:
		return "the pending transfer and dialog geometry"
	case transfer:
		return "the pending transfer"
	default:
		return "the saved dialog geometry"
	}
}

// StateThemeCmd stores the theme the save dialog starts with
type StateThemeCmd struct {
	Theme string `arg:"" help:"Dialog theme" enum:"light,dark"`
}

// Run executes the theme command
func (s *StateThemeCmd) Run(cli *CLI) error {
	store, err := cli.Container.StoreService()
	if err != nil {
		return err
	}
	if err := store.SetTheme(context.Background(), s.Theme); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	fmt.Printf("Dialog theme set to %s.\n", s.Theme)
	return nil
}
