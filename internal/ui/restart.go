package ui

import (
	"fmt"
	"os"
	"os/exec"
)

// relaunch starts a fresh copy of the running executable with the same
// arguments. The new process is detached; the caller quits the current one
// once the launch succeeds.
func relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start replacement process: %w", err)
	}
	return nil
}
