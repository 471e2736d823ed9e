package export

import (
	"os/exec"
	"runtime"

	"github.com/menuforge/menuforge/pkg/errors"
)

// openInBrowser hands a file to the platform's default browser.
func openInBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeExportFailed, err, "open %s in browser", path)
	}
	// The browser owns the page from here; reap the launcher in the
	// background so it doesn't linger as a zombie.
	go func() { _ = cmd.Wait() }()
	return nil
}
