package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdinConfirmer asks yes/no questions on the terminal. Anything other than
// an explicit yes declines.
type StdinConfirmer struct {
	In io.Reader
}

func (c *StdinConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Printf("\n%s [y/N]: ", prompt)

	line, err := bufio.NewReader(c.In).ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// AutoConfirmer accepts every prompt. Used for non-interactive runs.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) (bool, error) {
	return true, nil
}
