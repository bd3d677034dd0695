package board

import (
	"strings"

	"planboard/internal/model"
)

// Observer is notified after any committed mutation. Observers must not
// mutate the store from inside the callback.
type Observer func()

// Store owns the authoritative card collections. It partitions its universe
// of cards: a card id appears in exactly one collection at any time, and all
// membership changes go through AddCard/RemoveCard/MoveCard.
//
// The store is single-threaded by design: every mutation happens inside one
// discrete input handler, so readers always observe a consistent snapshot.
type Store struct {
	order       []string
	collections map[string][]model.Card

	// retired remembers removed ids so they are never handed out again.
	retired map[string]bool

	observers []Observer
}

// NewStore creates a store with the given (initially empty) collections, in
// the given order.
func NewStore(collectionIDs ...string) *Store {
	s := &Store{
		collections: map[string][]model.Card{},
		retired:     map[string]bool{},
	}
	for _, id := range collectionIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := s.collections[id]; ok {
			continue
		}
		s.order = append(s.order, id)
		s.collections[id] = []model.Card{}
	}
	return s
}

// Collections returns the collection ids in construction order.
func (s *Store) Collections() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Subscribe registers a change observer.
func (s *Store) Subscribe(fn Observer) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// List returns the collection's cards in insertion order. The returned slice
// is a copy; mutating it does not affect the store.
func (s *Store) List(collectionID string) []model.Card {
	cards, ok := s.collections[strings.TrimSpace(collectionID)]
	if !ok {
		return nil
	}
	out := make([]model.Card, len(cards))
	copy(out, cards)
	return out
}

// Find locates a card anywhere in the store and reports which collection
// holds it.
func (s *Store) Find(cardID string) (model.Card, string, bool) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return model.Card{}, "", false
	}
	for _, colID := range s.order {
		for _, c := range s.collections[colID] {
			if c.ID == cardID {
				return c, colID, true
			}
		}
	}
	return model.Card{}, "", false
}

func (s *Store) idExists(id string) bool {
	if s.retired[id] {
		return true
	}
	_, _, ok := s.Find(id)
	return ok
}

// AddCard appends a card to the collection. An empty card id gets a freshly
// assigned unique one; a caller-supplied id that collides with a live or
// retired id fails with DuplicateIDError.
func (s *Store) AddCard(collectionID string, c model.Card) (model.Card, error) {
	collectionID = strings.TrimSpace(collectionID)
	if _, ok := s.collections[collectionID]; !ok {
		return model.Card{}, UnknownCollectionError{CollectionID: collectionID}
	}

	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		c.ID = s.nextCardID()
	} else if s.idExists(c.ID) {
		return model.Card{}, DuplicateIDError{CardID: c.ID}
	}

	s.collections[collectionID] = append(s.collections[collectionID], c)
	s.notify()
	return c, nil
}

// RemoveCard removes and returns the card. The id is retired and never
// assigned again.
func (s *Store) RemoveCard(collectionID, cardID string) (model.Card, error) {
	collectionID = strings.TrimSpace(collectionID)
	cardID = strings.TrimSpace(cardID)
	cards, ok := s.collections[collectionID]
	if !ok {
		return model.Card{}, UnknownCollectionError{CollectionID: collectionID}
	}
	for i, c := range cards {
		if c.ID == cardID {
			s.collections[collectionID] = append(cards[:i:i], cards[i+1:]...)
			s.retired[cardID] = true
			s.notify()
			return c, nil
		}
	}
	return model.Card{}, NotFoundError{CollectionID: collectionID, CardID: cardID}
}

// Overrides are confirmed form fields merged into a card as it moves.
// Empty fields leave the card's current value untouched.
type Overrides struct {
	Title    string
	DateFrom string
	DateTo   string
	Memo     string
	Status   string
	Priority string
}

func (o Overrides) apply(c model.Card) model.Card {
	if v := strings.TrimSpace(o.Title); v != "" {
		c.Title = v
	}
	if v := strings.TrimSpace(o.DateFrom); v != "" {
		c.DateFrom = v
	}
	if v := strings.TrimSpace(o.DateTo); v != "" {
		c.DateTo = v
	}
	if v := strings.TrimSpace(o.Memo); v != "" {
		c.Memo = v
	}
	if v := strings.TrimSpace(o.Status); v != "" {
		c.Status = v
	}
	if v := strings.TrimSpace(o.Priority); v != "" {
		c.Priority = v
	}
	return c
}

// MoveCard removes the card from sourceID, applies overrides, and appends it
// to destID. Observers only ever see the card fully in one collection: the
// membership swap happens before anyone is notified, and a failed lookup
// leaves both collections untouched.
func (s *Store) MoveCard(sourceID, destID, cardID string, overrides Overrides) (model.Card, error) {
	sourceID = strings.TrimSpace(sourceID)
	destID = strings.TrimSpace(destID)
	cardID = strings.TrimSpace(cardID)

	src, ok := s.collections[sourceID]
	if !ok {
		return model.Card{}, UnknownCollectionError{CollectionID: sourceID}
	}
	if _, ok := s.collections[destID]; !ok {
		return model.Card{}, UnknownCollectionError{CollectionID: destID}
	}

	for i, c := range src {
		if c.ID != cardID {
			continue
		}
		moved := overrides.apply(c)
		s.collections[sourceID] = append(src[:i:i], src[i+1:]...)
		s.collections[destID] = append(s.collections[destID], moved)
		s.notify()
		return moved, nil
	}
	return model.Card{}, NotFoundError{CollectionID: sourceID, CardID: cardID}
}
