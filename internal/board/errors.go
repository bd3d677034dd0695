package board

import "fmt"

// NotFoundError reports a card id that is not present in the collection the
// caller expected. Callers treating a stale drag reference as a benign race
// should recover locally instead of surfacing this to the user.
type NotFoundError struct {
	CollectionID string
	CardID       string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("card not found in %s: %s", e.CollectionID, e.CardID)
}

// DuplicateIDError indicates an artificially constructed id collision.
// Not reachable through the gesture/form flow; a caller contract violation.
type DuplicateIDError struct {
	CardID string
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate card id: %s", e.CardID)
}

// UnknownCollectionError reports a collection id the store was not
// constructed with.
type UnknownCollectionError struct {
	CollectionID string
}

func (e UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown collection: %s", e.CollectionID)
}
