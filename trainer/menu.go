package trainer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RunMenu drives the interactive cheat menu until the user quits or input
// ends. Reading from an io.Reader keeps the loop scriptable; the caller
// decides the process exit code after it returns.
func RunMenu(m *Manager, in io.Reader, out io.Writer) {
	features := m.Features()

	// single-character dispatch: menu position -> identifier
	dispatch := make(map[string]string, len(features))
	for i, feature := range features {
		dispatch[strconv.Itoa(i+1)] = feature.Identifier
	}

	scanner := bufio.NewScanner(in)
	for {
		printMenu(m, out)
		fmt.Fprint(out, "> ")

		if !scanner.Scan() {
			return
		}
		choice := strings.ToLower(strings.TrimSpace(scanner.Text()))

		if choice == "q" {
			fmt.Fprintln(out, "Exiting cheat menu. Happy washing!")
			return
		}

		identifier, ok := dispatch[choice]
		if !ok {
			fmt.Fprintln(out, "Invalid option. Please try again.")
			continue
		}

		if err := m.Toggle(identifier); err != nil {
			m.log.Error("Toggle failed: ", err)
		}
	}
}

func printMenu(m *Manager, out io.Writer) {
	fmt.Fprintf(out, "\n=== %s Cheat Menu ===\n", m.profile.Name)
	for i, feature := range m.Features() {
		state := " "
		if feature.Enabled() {
			state = "*"
		}
		fmt.Fprintf(out, "[%d] Toggle %s [%s]\n", i+1, feature.Label, state)
	}
	fmt.Fprintln(out, "[q] Quit")
}
