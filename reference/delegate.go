package reference

import "github.com/vortex-fintech/go-vcards/vcard"

// Readers return "" when no card is attached and never create one. Writers
// attach a card through GetOrCreateContactCard first.

// FullName is the card's display name: the stored full name or the one
// derived from given and family name.
func (h *Holder) FullName() string { return vcard.FullName(h.card) }

// Nickname returns the card's nickname.
func (h *Holder) Nickname() string { return h.view().Nickname }

// FamilyName returns the card's family name.
func (h *Holder) FamilyName() string { return h.view().FamilyName }

// GivenName returns the card's given name.
func (h *Holder) GivenName() string { return h.view().GivenName }

// AdditionalName returns the card's additional (middle) name.
func (h *Holder) AdditionalName() string { return h.view().AdditionalName }

// HonorificPrefix returns the card's honorific prefix, e.g. "Dr.".
func (h *Holder) HonorificPrefix() string { return h.view().HonorificPrefix }

// HonorificSuffix returns the card's honorific suffix, e.g. "PhD".
func (h *Holder) HonorificSuffix() string { return h.view().HonorificSuffix }

// SetFullName stores an explicit full name on the card.
func (h *Holder) SetFullName(v string) { h.GetOrCreateContactCard().FullName = v }

// SetNickname sets the card's nickname.
func (h *Holder) SetNickname(v string) { h.GetOrCreateContactCard().Nickname = v }

// SetFamilyName sets the card's family name.
func (h *Holder) SetFamilyName(v string) { h.GetOrCreateContactCard().FamilyName = v }

// SetGivenName sets the card's given name.
func (h *Holder) SetGivenName(v string) { h.GetOrCreateContactCard().GivenName = v }

// SetAdditionalName sets the card's additional name.
func (h *Holder) SetAdditionalName(v string) { h.GetOrCreateContactCard().AdditionalName = v }

// SetHonorificPrefix sets the card's honorific prefix.
func (h *Holder) SetHonorificPrefix(v string) { h.GetOrCreateContactCard().HonorificPrefix = v }

// SetHonorificSuffix sets the card's honorific suffix.
func (h *Holder) SetHonorificSuffix(v string) { h.GetOrCreateContactCard().HonorificSuffix = v }

func (h *Holder) view() vcard.ContactCard {
	if h.card == nil {
		return vcard.ContactCard{}
	}
	return *h.card
}
