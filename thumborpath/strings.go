package thumborpath

import "strings"

// Join concatenates the non-empty parts with sep
func Join(sep string, parts ...string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(part)
	}
	return b.String()
}

// Prepend prefix to s, empty s stays empty
func Prepend(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

// Uniq returns items without duplicates, keeping first occurrence order
func Uniq(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	res := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		res = append(res, item)
	}
	return res
}

// SanitizeBase64 turns standard base64 into the URL safe alphabet
func SanitizeBase64(s string) string {
	return strings.NewReplacer("+", "-", "/", "_").Replace(s)
}

// AllGreaterThanZero reports whether every value is strictly positive
func AllGreaterThanZero(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) {
			return false
		}
	}
	return true
}
