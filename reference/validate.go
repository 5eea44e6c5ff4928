package reference

import (
	"errors"
	"fmt"
	"strconv"

	vcerrors "github.com/vortex-fintech/go-vcards/errors"
	"github.com/vortex-fintech/go-vcards/vcard"
)

// ValidateCards validates the single card and every card of the collection.
// Violations are prefixed with the card's position ("vcard.full_name",
// "vcards[1].given_name") and returned as one errors.ErrorResponse.
func (h *Holder) ValidateCards() error {
	var violations []vcerrors.FieldViolation

	check := func(prefix string, c *vcard.ContactCard) error {
		err := vcard.Validate(c)
		if err == nil {
			return nil
		}
		var resp vcerrors.ErrorResponse
		if !errors.As(err, &resp) {
			return fmt.Errorf("validate %s: %w", prefix, err)
		}
		h.logger().Warnw("contact card invalid",
			"owner_type", h.OwnerType,
			"owner_id", h.OwnerID.String(),
			"card_id", c.ID.String(),
			"violations", len(resp.Violations),
			"contacts", maskedContacts(c),
		)
		for _, v := range resp.Violations {
			v.Field = prefix + "." + v.Field
			violations = append(violations, v)
		}
		return nil
	}

	if h.card != nil {
		if err := check("vcard", h.card); err != nil {
			return err
		}
	}
	for i, c := range h.cards {
		if err := check("vcards["+strconv.Itoa(i)+"]", c); err != nil {
			return err
		}
	}

	if len(violations) == 0 {
		return nil
	}
	return vcerrors.ValidationViolations(violations)
}

func maskedContacts(c *vcard.ContactCard) []string {
	out := make([]string, 0, len(c.Contacts))
	for _, ct := range c.Contacts {
		out = append(out, ct.Masked())
	}
	return out
}
