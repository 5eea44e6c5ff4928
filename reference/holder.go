// Package reference binds contact cards to host records. A host type embeds
// Holder to own a single card, a collection of cards, or both:
//
//	type Account struct {
//		reference.Holder
//		Login string
//	}
//
//	acc := Account{Holder: reference.NewHolder("account", id)}
//	reference.GetOrCreateContactCard(&acc).GivenName = "Ben"
//
// Storing the cards is left to the host.
package reference

import (
	"time"

	"github.com/google/uuid"

	"github.com/vortex-fintech/go-vcards/domain"
	"github.com/vortex-fintech/go-vcards/logger"
	"github.com/vortex-fintech/go-vcards/vcard"
)

// Owner is satisfied by any type embedding Holder.
type Owner interface {
	holder() *Holder
}

// Holder is the owning side of the card association. OwnerType and OwnerID
// identify the host record, so one card table can serve many host types.
type Holder struct {
	OwnerType string
	OwnerID   uuid.UUID

	card  *vcard.ContactCard
	cards []*vcard.ContactCard

	log    logger.LoggerInterface
	now    func() time.Time
	events *domain.EventBuffer
}

// Option configures a Holder built by NewHolder.
type Option func(*Holder)

// WithLogger makes the holder log card creation and validation failures.
func WithLogger(l logger.LoggerInterface) Option {
	return func(h *Holder) {
		if l != nil {
			h.log = l
		}
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Holder) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHolder returns a Holder for the given owner with no card attached.
func NewHolder(ownerType string, ownerID uuid.UUID, opts ...Option) Holder {
	h := Holder{OwnerType: ownerType, OwnerID: ownerID}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

func (h *Holder) holder() *Holder { return h }

// GetOrCreateContactCard returns the owner's single card. When none is
// attached it creates a blank one with vcard.New, attaches it and records a
// vcard.attached event before returning it.
func GetOrCreateContactCard(o Owner) *vcard.ContactCard {
	return o.holder().GetOrCreateContactCard()
}

// GetOrCreateContactCard is the method form of the package function.
func (h *Holder) GetOrCreateContactCard() *vcard.ContactCard {
	if h.card != nil {
		return h.card
	}
	h.card = vcard.New()
	h.logger().Debugw("contact card built",
		"owner_type", h.OwnerType,
		"owner_id", h.OwnerID.String(),
		"card_id", h.card.ID.String(),
	)
	h.recordAttached(h.card, ShapeSingle)
	return h.card
}

// ContactCard returns the single card or nil. It never creates one.
func (h *Holder) ContactCard() *vcard.ContactCard {
	return h.card
}

// SetContactCard replaces the single card. A nil card detaches it.
func (h *Holder) SetContactCard(c *vcard.ContactCard) {
	h.card = c
	if c != nil {
		h.recordAttached(c, ShapeSingle)
	}
}

// AddContactCard appends c to the card collection. Nil cards are ignored.
func (h *Holder) AddContactCard(c *vcard.ContactCard) {
	if c == nil {
		return
	}
	h.cards = append(h.cards, c)
	h.recordAttached(c, ShapeCollection)
}

// ContactCards returns the collection in attachment order. The slice is a
// copy; the cards are shared.
func (h *Holder) ContactCards() []*vcard.ContactCard {
	out := make([]*vcard.ContactCard, len(h.cards))
	copy(out, h.cards)
	return out
}

// PullEvents drains the events recorded since the last call.
func (h *Holder) PullEvents() []domain.Event {
	if h.events == nil {
		return nil
	}
	return h.events.Pull()
}

func (h *Holder) logger() logger.LoggerInterface {
	if h.log == nil {
		return logger.Nop()
	}
	return h.log
}

func (h *Holder) clock() time.Time {
	if h.now == nil {
		return time.Now()
	}
	return h.now()
}
