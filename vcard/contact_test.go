package vcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContactNormalizesByKind(t *testing.T) {
	tests := []struct {
		name  string
		kind  string
		value string
		want  Contact
	}{
		{name: "phone", kind: " phone ", value: " +41 (44) 123-45-67 ", want: Contact{Kind: "phone", Value: "+41441234567"}},
		{name: "kind is case-insensitive", kind: "Mobile", value: "+41 79 123", want: Contact{Kind: "Mobile", Value: "+4179123"}},
		{name: "email", kind: "email", value: " Ben@Example.COM ", want: Contact{Kind: "email", Value: "ben@example.com"}},
		{name: "web", kind: "web", value: " HTTP://example.com ", want: Contact{Kind: "web", Value: "http://example.com"}},
		{name: "custom label", kind: "Tel. office", value: " 044 123 45 67 ", want: Contact{Kind: "Tel. office", Value: "044 123 45 67"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewContact(tt.kind, tt.value))
		})
	}
}

func TestContactString(t *testing.T) {
	assert.Equal(t, "phone: +41441234567", Contact{Kind: "phone", Value: "+41441234567"}.String())
	assert.Equal(t, "+41441234567", Contact{Value: " +41441234567 "}.String())
	assert.Equal(t, "fax: ", Contact{Kind: "fax"}.String())
}

func TestContactMasked(t *testing.T) {
	assert.Equal(t, "phone: +*******4567", Contact{Kind: "phone", Value: "+41441234567"}.Masked())
	assert.Equal(t, "email: b**@example.com", Contact{Kind: "email", Value: "ben@example.com"}.Masked())
}

func TestAddContactAppendsInOrder(t *testing.T) {
	c := New()
	first := c.AddContact(KindEmail, "A@B.CH")
	c.AddContact(KindPhone, "1")

	assert.Equal(t, "a@b.ch", first.Value)
	assert.Equal(t, []string{"email: a@b.ch", "phone: 1"}, ContactLines(c))
}
