package platform

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bgricker/buildreport/internal/report"
)

// Detect returns the descriptor for the host the pipeline runs on. OS and
// architecture come from the runtime; the kernel string comes from `uname -r`
// and degrades to "unknown" when the command is unavailable.
func Detect() report.Platform {
	return report.Platform{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		Kernel: kernelVersion(),
	}
}

func kernelVersion() string {
	out, err := runCommand("uname", "-r")
	if err != nil || out == "" {
		return "unknown"
	}
	return out
}

func runCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
