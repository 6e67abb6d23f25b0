//go:build !darwin && !linux

package desktop

import "github.com/renato0307/tabstash/internal/domain"

func notifyCommand(domain.Notification) (string, []string, error) {
	return "", nil, ErrUnsupported
}
