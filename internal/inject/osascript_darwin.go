//go:build darwin

package inject

import (
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// osascript types text through the System Events scripting bridge. It
// works without the Accessibility permission CGEvent posting needs, at
// the cost of spawning a process per call.
type osascript struct{}

func newOsascript() Strategy { return osascript{} }

func (osascript) Name() string { return "osascript" }

func (osascript) Available() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

var scriptQuoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func (osascript) Type(text string, _ time.Duration) error {
	script := fmt.Sprintf(`tell application "System Events" to keystroke "%s"`,
		scriptQuoter.Replace(text))

	out, err := exec.Command("osascript", "-e", script).CombinedOutput()
	if err != nil {
		return fmt.Errorf("osascript: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
