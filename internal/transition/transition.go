package transition

import (
	"errors"
	"strings"

	"planboard/internal/board"
	"planboard/internal/form"
	"planboard/internal/model"
)

// Phase of the in-flight gesture. Modeled as an explicit tagged state so
// that illegal combinations (awaiting confirmation with no pending card)
// cannot be represented.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseAwaitingConfirmation
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseAwaitingConfirmation:
		return "awaiting-confirmation"
	default:
		return "unknown"
	}
}

// DropContext is optional context supplied by the drop target. A calendar
// drop carries the target date (YYYY-MM-DD), which pre-fills the form's
// date range.
type DropContext struct {
	Date string
}

// Controller turns a drag/drop gesture into a pending move that must pass
// the confirmation form before the board store is touched. It holds the
// dragged card by id only; the store stays the single source of membership
// truth, and the card logically remains in its source collection until the
// move commits.
type Controller struct {
	store *board.Store

	phase    Phase
	cardID   string
	sourceID string

	// Set while awaiting confirmation.
	destID string
	card   model.Card // display snapshot for the form dialog
	form   form.Data
}

func NewController(store *board.Store) *Controller {
	return &Controller{store: store}
}

func (c *Controller) Phase() Phase { return c.phase }

// DraggedCardID returns the id of the card being dragged ("" when idle).
func (c *Controller) DraggedCardID() string {
	if c.phase == PhaseIdle {
		return ""
	}
	return c.cardID
}

// SourceID returns the collection the dragged card was grabbed from.
func (c *Controller) SourceID() string {
	if c.phase == PhaseIdle {
		return ""
	}
	return c.sourceID
}

// Pending returns the card snapshot and destination of the move awaiting
// confirmation.
func (c *Controller) Pending() (card model.Card, destID string, ok bool) {
	if c.phase != PhaseAwaitingConfirmation {
		return model.Card{}, "", false
	}
	return c.card, c.destID, true
}

// Form returns the current confirmation form contents.
func (c *Controller) Form() form.Data { return c.form }

// SetForm stores edited form contents while awaiting confirmation, so a
// failed submit keeps the user's input.
func (c *Controller) SetForm(d form.Data) {
	if c.phase != PhaseAwaitingConfirmation {
		return
	}
	c.form = d
}

// DragStart begins dragging the card. Starting a new drag while another is
// active replaces it; drags never stack.
func (c *Controller) DragStart(sourceID, cardID string) {
	c.reset()
	cardID = strings.TrimSpace(cardID)
	sourceID = strings.TrimSpace(sourceID)
	if cardID == "" || sourceID == "" {
		return
	}
	c.phase = PhaseDragging
	c.sourceID = sourceID
	c.cardID = cardID
}

// DragEnd ends a drag that never hit a valid target. No store change.
func (c *Controller) DragEnd() {
	if c.phase != PhaseDragging {
		return
	}
	c.reset()
}

// Drop lands the dragged card on a destination collection. Dropping on the
// source collection is a no-op (the drag stays active). If the card has
// vanished from the source in the meantime, the transition silently aborts
// back to idle. On success the controller opens a confirmation form
// pre-populated from the card and the drop context.
func (c *Controller) Drop(destID string, ctx DropContext) bool {
	if c.phase != PhaseDragging {
		return false
	}
	destID = strings.TrimSpace(destID)
	if destID == "" || destID == c.sourceID {
		return false
	}

	card, where, ok := c.store.Find(c.cardID)
	if !ok || where != c.sourceID {
		// Benign race: the card was removed under us.
		c.reset()
		return false
	}

	c.phase = PhaseAwaitingConfirmation
	c.destID = destID
	c.card = card
	c.form = form.New()
	c.form.Text = card.Title
	if d := strings.TrimSpace(ctx.Date); d != "" {
		c.form.DateFrom = d
		c.form.DateTo = d
	}
	return true
}

// Submit validates the form and, on success, commits the pending move with
// the form merged as overrides. A ValidationError keeps the transition
// pending so the user can fix and resubmit; no partial commit ever happens.
func (c *Controller) Submit(d form.Data) error {
	if c.phase != PhaseAwaitingConfirmation {
		return errors.New("no pending transition")
	}
	c.form = d
	if err := form.Validate(d); err != nil {
		return err
	}

	_, err := c.store.MoveCard(c.sourceID, c.destID, c.cardID, d.Overrides())
	if err != nil {
		var nf board.NotFoundError
		if errors.As(err, &nf) {
			// Stale reference; recover locally with no user-visible error.
			c.reset()
			return nil
		}
		return err
	}
	c.reset()
	return nil
}

// Cancel discards the pending move and form. The store is untouched; the
// card stays in its original collection.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.cardID = ""
	c.sourceID = ""
	c.destID = ""
	c.card = model.Card{}
	c.form = form.Data{}
}
