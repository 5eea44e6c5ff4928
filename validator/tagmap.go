package validator

var tagMap = map[string]string{
	"notblank": "blank",
	"email":    "invalid_email",
	"e164":     "invalid_phone",
	"url":      "invalid_url",
	"max":      "too_long",
}

// TagReasons returns a copy of the tag -> reason table.
func TagReasons() map[string]string {
	out := make(map[string]string, len(tagMap))
	for k, val := range tagMap {
		out[k] = val
	}
	return out
}

// ReasonFor maps a validation tag to its stable reason code.
func ReasonFor(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
