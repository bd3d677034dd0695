package roster

import (
	"strings"

	"planboard/internal/group"
	"planboard/internal/model"
)

// Roster is the read-only resources/online-users panel. It never touches the
// board store; it only filters and groups a fixed list of users.
type Roster struct {
	users []model.User
}

func New(users []model.User) *Roster {
	out := make([]model.User, len(users))
	copy(out, users)
	return &Roster{users: out}
}

// Users returns all roster entries in their original order.
func (r *Roster) Users() []model.User {
	out := make([]model.User, len(r.users))
	copy(out, r.users)
	return out
}

// Filter returns the users whose name contains text, case-insensitively.
// Empty text matches everyone. This containment rule is the roster's own;
// it is intentionally simpler than the card filter's exact-match sets.
func (r *Roster) Filter(text string) []model.User {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return r.Users()
	}
	var out []model.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), text) {
			out = append(out, u)
		}
	}
	return out
}

// Grouped filters by text and buckets the result by group label.
func (r *Roster) Grouped(text string) []group.Entry[model.User] {
	return group.By(r.Filter(text), func(u model.User) string {
		return group.Key(u.Group)
	})
}
