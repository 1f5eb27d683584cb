package shared

import (
	"fmt"
	"os/exec"
	"runtime"
)

var currentOS = func() string { return runtime.GOOS }

// OpenBrowser launches the default system browser at url. The command is
// started and not waited on; the caller keeps running while the user
// authorizes in the browser.
func OpenBrowser(url string) error {
	var args []string
	switch os := currentOS(); os {
	case "darwin":
		args = []string{"open", url}
	case "linux":
		args = []string{"xdg-open", url}
	case "windows":
		args = []string{"cmd", "/c", "start", url}
	default:
		return fmt.Errorf("unsupported platform: %s", os)
	}

	if err := exec.Command(args[0], args[1:]...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
