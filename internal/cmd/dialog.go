package cmd

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	adapterbridge "github.com/renato0307/tabstash/internal/adapters/bridge"
	"github.com/renato0307/tabstash/internal/config"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ui"
)

// DialogCmd runs the terminal save dialog against a running server
type DialogCmd struct {
	Addr   string `help:"Address of the running tabstash server" default:"127.0.0.1:7412" env:"TABSTASH_LISTEN_ADDR"`
	Ticket string `help:"Ticket of the pending transfer (from the dialog URL)"`
}

// Run executes the dialog command
func (d *DialogCmd) Run(cli *CLI) error {
	addr := d.Addr
	if addr == config.DefaultListenAddr {
		if _, hasEnv := os.LookupEnv("TABSTASH_LISTEN_ADDR"); !hasEnv {
			addr = cli.LoadedSettings().GetListenAddr()
		}
	}

	logging.Logger.Info("Opening save dialog", "addr", addr, "has_ticket", d.Ticket != "")

	client := adapterbridge.NewClient(addr, cli.LoadedSettings().GetHostCallTimeout())
	model := ui.NewSaveDialog(client, d.Ticket, time.Now())

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("dialog failed: %w", err)
	}

	result := final.(*ui.SaveDialog).Result
	switch {
	case result.Saved:
		fmt.Println("Tabs saved.")
	case result.Cancelled:
		fmt.Println("Save cancelled.")
	}
	return nil
}
