package reference

import (
	"github.com/google/uuid"

	"github.com/vortex-fintech/go-vcards/domain"
	"github.com/vortex-fintech/go-vcards/vcard"
)

const (
	EventCardAttached = "vcard.attached"

	producer = "vcards.reference"
)

// Shape tells which side of the association a card was attached to.
type Shape string

const (
	ShapeSingle     Shape = "single"
	ShapeCollection Shape = "collection"
)

// CardAttached is recorded whenever a card becomes owned by a holder.
type CardAttached struct {
	domain.BaseEvent

	CardID    uuid.UUID
	OwnerType string
	OwnerID   uuid.UUID
	Shape     Shape
}

func (h *Holder) recordAttached(c *vcard.ContactCard, shape Shape) {
	base, err := domain.NewBaseEvent(EventCardAttached, producer, h.clock())
	if err != nil {
		h.logger().Errorw("cannot build event", "event", EventCardAttached, "error", err)
		return
	}
	base = base.
		WithMeta("card_id", c.ID.String()).
		WithMeta("owner_type", h.OwnerType).
		WithMeta("shape", string(shape))

	if h.events == nil {
		h.events = &domain.EventBuffer{}
	}
	h.events.Record(CardAttached{
		BaseEvent: base,
		CardID:    c.ID,
		OwnerType: h.OwnerType,
		OwnerID:   h.OwnerID,
		Shape:     shape,
	})
}
