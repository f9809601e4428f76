package catalog

import (
	"context"
	"strings"
	"time"
)

const (
	minTokenLen    = 2
	maxSuggestions = 8
)

// ScheduleAutocomplete debounces suggestion lookups: only the most recent
// input within the debounce window triggers a request.
func (c *Controller) ScheduleAutocomplete(input string) {
	c.acMu.Lock()
	defer c.acMu.Unlock()

	if c.acTimer != nil {
		c.acTimer.Stop()
	}
	c.acTimer = time.AfterFunc(c.debounce, func() {
		c.fetchAutocomplete(input)
	})
}

// CancelAutocomplete drops any pending or in-flight lookup, hiding the
// suggestion list.
func (c *Controller) CancelAutocomplete() {
	c.acMu.Lock()
	if c.acTimer != nil {
		c.acTimer.Stop()
		c.acTimer = nil
	}
	if c.acCancel != nil {
		c.acCancel()
		c.acCancel = nil
	}
	c.acGen++
	c.acMu.Unlock()

	c.view.HideSuggestions()
}

// fetchAutocomplete issues one lookup for the last whitespace-delimited
// token of the input. A previous in-flight lookup is cancelled first, so
// at most one result is ever live; a stale response that loses the race
// is discarded rather than rendered.
func (c *Controller) fetchAutocomplete(input string) {
	value := strings.TrimSpace(input)
	if value == "" {
		c.view.HideSuggestions()
		return
	}

	token := lastToken(value)
	if len([]rune(token)) < minTokenLen {
		c.view.HideSuggestions()
		return
	}

	c.acMu.Lock()
	if c.acCancel != nil {
		c.acCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.acCancel = cancel
	c.acGen++
	gen := c.acGen
	c.acMu.Unlock()

	items, err := c.api.Autocomplete(ctx, token)

	c.acMu.Lock()
	stale := gen != c.acGen
	c.acMu.Unlock()
	if stale || ctx.Err() != nil {
		return
	}

	if err != nil {
		c.view.HideSuggestions()
		return
	}
	if len(items) > maxSuggestions {
		items = items[:maxSuggestions]
	}
	if len(items) == 0 {
		c.view.HideSuggestions()
		return
	}
	c.view.ShowSuggestions(items)
}

// ApplySuggestion replaces the last token of the input with the chosen
// suggestion, keeping a trailing space when one was present.
func ApplySuggestion(input, suggestion string) string {
	trailing := strings.HasSuffix(input, " ") || strings.HasSuffix(input, "\t")

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return suggestion
	}
	fields[len(fields)-1] = suggestion

	out := strings.Join(fields, " ")
	if trailing {
		out += " "
	}
	return out
}

func lastToken(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return value
	}
	return fields[len(fields)-1]
}
