//go:build linux

package desktop

import "github.com/renato0307/tabstash/internal/domain"

// notifyCommand uses notify-send from libnotify
func notifyCommand(n domain.Notification) (string, []string, error) {
	return "notify-send", []string{"--app-name=tabstash", n.Title, n.Message}, nil
}
