package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/tabstash/internal/logging"
)

// FileName is the lock file name inside the tabstash home
const FileName = "tabstash.lock"

// ErrAlreadyRunning is returned when another process holds the lock
var ErrAlreadyRunning = errors.New("another tabstash server is already running")

// InstanceLock is an exclusive lock held for the lifetime of the server.
// Only one coordinator may own the pending transfer and dialog state.
type InstanceLock struct {
	file *os.File
}

// Acquire takes the lock in dir without blocking
func Acquire(dir string) (*InstanceLock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, FileName)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLock(file); err != nil {
		owner := readOwner(file)
		_ = file.Close()
		if owner != "" {
			return nil, fmt.Errorf("%w (pid %s)", ErrAlreadyRunning, owner)
		}
		return nil, ErrAlreadyRunning
	}

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)
	}

	logging.Logger.Debug("Instance lock acquired", "path", path)
	return &InstanceLock{file: file}, nil
}

// Release unlocks and closes the lock file
func (l *InstanceLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := unlock(l.file)
	if closeErr := l.file.Close(); err == nil {
		err = closeErr
	}
	l.file = nil
	return err
}

func readOwner(file *os.File) string {
	buf := make([]byte, 32)
	n, _ := file.ReadAt(buf, 0)
	return strings.TrimSpace(string(buf[:n]))
}
