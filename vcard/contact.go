package vcard

import (
	"strings"

	"github.com/vortex-fintech/go-vcards/contactutil"
	"github.com/vortex-fintech/go-vcards/piiutil"
)

// Well-known contact kinds. Kind is a free-form label; these are the ones
// that get value normalization.
const (
	KindPhone  = "phone"
	KindMobile = "mobile"
	KindFax    = "fax"
	KindEmail  = "email"
	KindWeb    = "web"
)

// Contact is a single contact method owned by a card.
type Contact struct {
	Kind  string `json:"kind,omitempty" validate:"max=64"`
	Value string `json:"value" validate:"notblank"`
}

// NewContact trims kind and normalizes value for the well-known kinds.
func NewContact(kind, value string) Contact {
	kind = strings.TrimSpace(kind)
	return Contact{Kind: kind, Value: normalizeContactValue(kind, value)}
}

// String is the display line: "<kind>: <value>", or the bare value when the
// kind is blank.
func (c Contact) String() string {
	return formatContact(strings.TrimSpace(c.Kind), strings.TrimSpace(c.Value))
}

// Masked is String with the value masked, for logs.
func (c Contact) Masked() string {
	return formatContact(strings.TrimSpace(c.Kind), piiutil.MaskContact(c.Kind, c.Value))
}

func formatContact(kind, value string) string {
	if kind == "" {
		return value
	}
	return kind + ": " + value
}

func normalizeContactValue(kind, value string) string {
	switch strings.ToLower(kind) {
	case KindPhone, KindMobile, KindFax:
		return contactutil.NormalizeE164(value)
	case KindEmail:
		return contactutil.NormalizeEmail(value)
	case KindWeb:
		return contactutil.NormalizeWeb(value)
	default:
		return strings.TrimSpace(value)
	}
}
