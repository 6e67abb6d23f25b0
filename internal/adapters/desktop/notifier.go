package desktop

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/renato0307/tabstash/internal/domain"
	"github.com/renato0307/tabstash/internal/logging"
	"github.com/renato0307/tabstash/internal/ports"
)

// ErrUnsupported is returned on platforms without a notification command
var ErrUnsupported = errors.New("desktop notifications are not supported on this platform")

// runFunc runs an external command to completion
type runFunc func(ctx context.Context, name string, args ...string) error

// Notifier implements ports.Notifier with the operating system's
// notification command. It backs up the browser when no shim is connected.
type Notifier struct {
	run runFunc
}

// Verify interface compliance at compile time
var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a new desktop notifier
func NewNotifier() *Notifier {
	return &Notifier{run: runCommand}
}

// Notify shows n using the platform command.
// Platform-specific commands are in notifier_*.go files with build tags.
func (n *Notifier) Notify(ctx context.Context, note domain.Notification) error {
	name, args, err := notifyCommand(note)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Showing desktop notification", "command", name, "id", note.ID)
	if err := n.run(ctx, name, args...); err != nil {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
