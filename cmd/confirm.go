package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/yatai/till"
)

// askYesNo prompts the operator on stderr and reads a y/n answer on stdin.
// Anything but an explicit yes declines.
func askYesNo(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// confirmer returns the confirmation capability, honoring a -y flag.
func confirmer(assumeYes bool) till.Confirmer {
	if assumeYes {
		return func(string) bool { return true }
	}
	return askYesNo
}
