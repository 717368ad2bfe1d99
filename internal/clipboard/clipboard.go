// Package clipboard wraps system clipboard access. Failures are expected on
// headless machines; callers degrade to printing the content instead.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Write copies text to the system clipboard.
func Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available on this platform")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
