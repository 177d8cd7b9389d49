package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm writes a yes/no prompt to w and reads the answer from r.
// Only "y" or "yes" (case-insensitive) confirm; anything else declines.
// A read failure with no input is returned as an error so the caller
// can treat it as an implicit decline.
func Confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	if err != nil && answer == "" {
		return false, err
	}

	return answer == "y" || answer == "yes", nil
}
