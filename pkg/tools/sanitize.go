package tools

import "time"

// SanitizeDetails strips nil and empty-string values from a detail map,
// recursing into nested maps and dropping any that end up empty. The
// persistence layer rejects null values, so this runs before every write.
func SanitizeDetails(details map[string]any) map[string]any {
	filtered := make(map[string]any)
	for key, value := range details {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			filtered[key] = v
		case map[string]any:
			nested := SanitizeDetails(v)
			if len(nested) == 0 {
				continue
			}
			filtered[key] = nested
		default:
			filtered[key] = value
		}
	}
	return filtered
}

// DateOf formats a time as the calendar date used to key daily records.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// Today is DateOf(now) in UTC.
func Today() string {
	return DateOf(time.Now().UTC())
}
