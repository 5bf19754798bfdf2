//go:build !unix

package executor

import "os/exec"

// killProcessGroupOnCancel keeps the default cancel behavior; WaitDelay
// still bounds the wait on leftover output pipes.
func killProcessGroupOnCancel(*exec.Cmd) {}
