package listing

import "strings"

// SplitField breaks a "* key: value" line into a trimmed key and value.
// A line without a colon yields the whole remainder as the key and an
// empty value, the grammar has no way to reject it.
func SplitField(line string) (string, string) {
	body := strings.TrimPrefix(line, fieldMarker)
	key, value, _ := strings.Cut(body, ":")
	return strings.TrimSpace(key), strings.TrimSpace(value)
}

// InterpretField coerces a raw field value into its typed form:
// the "cuisines" key becomes a list of trimmed strings, "true"/"false"
// (any case) become booleans, and everything else passes through as a
// string. There is deliberately no numeric coercion.
func InterpretField(key, value string) any {
	if key == "cuisines" {
		parts := strings.Split(value, ",")
		list := make([]string, len(parts))
		for i, p := range parts {
			list[i] = strings.TrimSpace(p)
		}
		return list
	}
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	return value
}
