package repository

// CartStore persists the ordered set of good identifiers in the cart.
// Stored payloads that are not a well-formed array of numeric values read
// back as an empty cart; corruption is never surfaced as an error.
type CartStore interface {
	// IDs returns the cart contents in insertion order.
	IDs() []int64
	// SetIDs overwrites the whole cart.
	SetIDs(ids []int64)
	// Add appends the id unless it is already present.
	Add(id int64)
	// Remove drops every entry equal to id.
	Remove(id int64)
	// Clear deletes the stored cart entirely.
	Clear()
}
