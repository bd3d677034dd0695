package model

// Collection ids used by the stock board layout. The engine itself treats
// collection ids as opaque; these names are shared by the seed payload and
// the presentation layer.
const (
	CollectionAvailable = "available"
	CollectionEvents    = "events"
)

// Card is a single work item. A card belongs to exactly one collection at a
// time; collection membership is owned by the board store, not the card.
type Card struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Group is an optional category label. Cards without one are shown under
	// an implicit "Ungrouped" bucket; the sentinel is never written back here.
	Group string `json:"group,omitempty"`

	// Scheduling/classification fields, populated by a confirmed move.
	// Dates are YYYY-MM-DD.
	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
	Memo     string `json:"memo,omitempty"`
	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`
}

type UserStatus string

const (
	UserStatusOnline  UserStatus = "online"
	UserStatusOffline UserStatus = "offline"
)

// User is a read-only roster entry (the resources/online-users panel).
type User struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Status UserStatus `json:"status"`
	Group  string     `json:"group,omitempty"`
}
