package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptConfirm asks a y/N question on the terminal.
type promptConfirm struct {
	in  io.Reader
	out io.Writer
}

func (p promptConfirm) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
