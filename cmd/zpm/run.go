package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"git.sr.ht/~mango/zpm/vm"
)

// Loops live on a single line, so allow for long ones
const maxLineLen = 16 << 20

// run feeds r to m one line at a time.  Blank lines are skipped.  On the first
// line that fails, its 1-based number is reported to stderr and run stops; ok
// is false in that case.  err is only set when reading r fails.
func run(r io.Reader, m *vm.VM, stderr io.Writer) (ok bool, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineLen)

	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := m.Exec(line); err != nil {
			fmt.Fprintf(stderr, "RUNTIME ERROR: line %d\n", n)
			return false, nil
		}
	}
	return true, sc.Err()
}
