package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command returns the user's editor as argv, so values like "code --wait" work.
func Command() []string {
	for _, key := range []string{"EDITOR", "VISUAL"} {
		if argv := strings.Fields(os.Getenv(key)); len(argv) > 0 {
			return argv
		}
	}
	return []string{"vi"}
}

// Open runs the editor on path attached to the terminal and waits for it to exit.
func Open(path string) error {
	argv := append(Command(), path)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", strings.Join(argv[:len(argv)-1], " "), err)
	}
	return nil
}
