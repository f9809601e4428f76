package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/example/shopfront/internal/domain/model"
)

// TermConfirmer asks yes/no questions on the terminal. Anything but an
// explicit yes declines.
type TermConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTermConfirmer builds a confirmer over the given streams. The reader
// is shared with the rest of the terminal UI so prompts and the command
// loop never fight over buffered input.
func NewTermConfirmer(in *bufio.Reader, out io.Writer) *TermConfirmer {
	return &TermConfirmer{in: in, out: out}
}

func (c *TermConfirmer) Confirm(title, message string) bool {
	fmt.Fprintf(c.out, "%s\n%s [y/N]: ", title, message)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// TermOrderEditor collects updated delivery details field by field. An
// empty answer keeps the current value; the final prompt decides whether
// the edit is saved.
type TermOrderEditor struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTermOrderEditor builds an editor over the given streams.
func NewTermOrderEditor(in *bufio.Reader, out io.Writer) *TermOrderEditor {
	return &TermOrderEditor{in: in, out: out}
}

func (e *TermOrderEditor) Edit(current model.UpdateOrderRequest) (model.UpdateOrderRequest, bool) {
	updated := current
	updated.DeliveryAddress = e.ask("Delivery address", current.DeliveryAddress)
	updated.DeliveryDate = e.ask("Delivery date (yyyy-mm-dd)", current.DeliveryDate)
	updated.DeliveryInterval = e.ask("Delivery interval", current.DeliveryInterval)
	updated.Comment = e.ask("Comment", current.Comment)

	fmt.Fprint(e.out, "Save changes? [y/N]: ")
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return current, false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return updated, true
	}
	return current, false
}

func (e *TermOrderEditor) ask(label, current string) string {
	fmt.Fprintf(e.out, "%s [%s]: ", label, current)
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return current
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return current
	}
	return line
}
