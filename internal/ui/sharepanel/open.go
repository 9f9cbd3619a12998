package sharepanel

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenBrowser opens the given URL with the platform's default handler.
func OpenBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the handler process; its exit status is not interesting.
	go func() { _ = cmd.Wait() }()
	return nil
}
