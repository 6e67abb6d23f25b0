//go:build darwin

package desktop

import (
	"fmt"
	"strconv"

	"github.com/renato0307/tabstash/internal/domain"
)

// notifyCommand uses AppleScript through osascript
func notifyCommand(n domain.Notification) (string, []string, error) {
	script := fmt.Sprintf("display notification %s with title %s", strconv.Quote(n.Message), strconv.Quote(n.Title))
	return "osascript", []string{"-e", script}, nil
}
