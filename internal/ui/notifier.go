package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Notification is one toast with its dismissal deadline.
type Notification struct {
	Kind    string
	Text    string
	Expires time.Time
}

// TermNotifier prints toasts to a writer and keeps them listable until
// their lifetime runs out, mirroring auto-dismissing on-screen toasts.
type TermNotifier struct {
	w    io.Writer
	ttl  time.Duration
	now  func() time.Time
	mu   sync.Mutex
	live []Notification
}

// NewTermNotifier builds a notifier whose toasts expire after ttl.
func NewTermNotifier(w io.Writer, ttl time.Duration) *TermNotifier {
	return &TermNotifier{
		w:   w,
		ttl: ttl,
		now: time.Now,
	}
}

func (n *TermNotifier) Success(text string) { n.push("ok", text) }
func (n *TermNotifier) Error(text string)   { n.push("error", text) }
func (n *TermNotifier) Info(text string)    { n.push("info", text) }

func (n *TermNotifier) push(kind, text string) {
	n.mu.Lock()
	now := n.now()
	n.prune(now)
	n.live = append(n.live, Notification{Kind: kind, Text: text, Expires: now.Add(n.ttl)})
	n.mu.Unlock()

	fmt.Fprintf(n.w, "[%s] %s\n", kind, text)
}

// Active returns the toasts that have not expired yet.
func (n *TermNotifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.prune(n.now())
	out := make([]Notification, len(n.live))
	copy(out, n.live)
	return out
}

func (n *TermNotifier) prune(now time.Time) {
	kept := n.live[:0]
	for _, note := range n.live {
		if note.Expires.After(now) {
			kept = append(kept, note)
		}
	}
	n.live = kept
}
