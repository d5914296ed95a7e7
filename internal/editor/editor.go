package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Command returns the editor command line split into program and args.
func Command() []string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if parts := strings.Fields(os.Getenv(env)); len(parts) > 0 {
			return parts
		}
	}
	return []string{"vi"}
}

func Open(path string) error {
	argv := append(Command(), path)
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %q: %w", argv[0], err)
	}
	return nil
}
