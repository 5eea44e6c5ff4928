// Package vcard holds the contact card record together with its name
// validation and display helpers. All functions are pure; a card is never
// mutated unless the function says so.
package vcard

import (
	"github.com/google/uuid"
)

// Field names as they appear in json and in validation errors.
const (
	FieldFullName        = "full_name"
	FieldGivenName       = "given_name"
	FieldFamilyName      = "family_name"
	FieldAdditionalName  = "additional_name"
	FieldHonorificPrefix = "honorific_prefix"
	FieldHonorificSuffix = "honorific_suffix"
	FieldNickname        = "nickname"

	FieldStreetAddress   = "street_address"
	FieldExtendedAddress = "extended_address"
	FieldPostOfficeBox   = "post_office_box"
	FieldPostalCode      = "postal_code"
	FieldLocality        = "locality"
	FieldRegion          = "region"
	FieldCountryName     = "country_name"
)

// ContactCard is the name, postal address and contact methods of one person or
// organisation. Empty strings mean "not set".
type ContactCard struct {
	ID uuid.UUID `json:"id"`

	FullName        string `json:"full_name,omitempty"`
	GivenName       string `json:"given_name,omitempty"`
	FamilyName      string `json:"family_name,omitempty"`
	AdditionalName  string `json:"additional_name,omitempty"`
	HonorificPrefix string `json:"honorific_prefix,omitempty"`
	HonorificSuffix string `json:"honorific_suffix,omitempty"`
	Nickname        string `json:"nickname,omitempty"`

	StreetAddress   string `json:"street_address,omitempty"`
	ExtendedAddress string `json:"extended_address,omitempty"`
	PostOfficeBox   string `json:"post_office_box,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
	Locality        string `json:"locality,omitempty"`
	Region          string `json:"region,omitempty"`
	CountryName     string `json:"country_name,omitempty"`

	// Contacts keeps association order.
	Contacts []Contact `json:"contacts,omitempty" validate:"dive"`
}

// New returns a blank card with a fresh time-ordered id.
func New() *ContactCard {
	return &ContactCard{ID: uuid.Must(uuid.NewV7())}
}

// AddContact normalizes value for kind, appends the contact and returns it.
func (c *ContactCard) AddContact(kind, value string) Contact {
	ct := NewContact(kind, value)
	c.Contacts = append(c.Contacts, ct)
	return ct
}

type field struct {
	name string
	ptr  *string
}

func nameFields(c *ContactCard) []field {
	return []field{
		{FieldFullName, &c.FullName},
		{FieldGivenName, &c.GivenName},
		{FieldFamilyName, &c.FamilyName},
		{FieldAdditionalName, &c.AdditionalName},
		{FieldHonorificPrefix, &c.HonorificPrefix},
		{FieldHonorificSuffix, &c.HonorificSuffix},
		{FieldNickname, &c.Nickname},
	}
}

// addressFields is the canonical address line order.
func addressFields(c *ContactCard) []field {
	return []field{
		{FieldStreetAddress, &c.StreetAddress},
		{FieldExtendedAddress, &c.ExtendedAddress},
		{FieldPostOfficeBox, &c.PostOfficeBox},
		{FieldPostalCode, &c.PostalCode},
		{FieldLocality, &c.Locality},
		{FieldRegion, &c.Region},
		{FieldCountryName, &c.CountryName},
	}
}
