//go:build unix

package lock

import (
	"os"

	"golang.org/x/sys/unix"
)

// tryLock acquires an exclusive lock without blocking (Unix implementation)
func tryLock(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

// unlock releases the lock (Unix implementation)
func unlock(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
