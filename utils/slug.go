package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// Slugify converts an arbitrary name into a lowercase URL-safe slug.
// Seed it with something readable (client name, email local part); the
// caller is responsible for uniquifying on collision.
func Slugify(name string) string {
	// Email addresses seed from the local part only
	if at := strings.IndexByte(name, '@'); at > 0 {
		name = name[:at]
	}

	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	name = strings.ReplaceAll(name, " ", "-")

	var result strings.Builder
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-' {
			result.WriteRune(char)
		}
	}

	slug := strings.Trim(result.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	if slug == "" {
		slug = "client-" + RandomSuffix(6)
	}
	if len(slug) > 48 {
		slug = strings.Trim(slug[:48], "-")
	}
	return slug
}

// RandomSuffix generates a short lowercase alphanumeric string for
// uniquifying slugs.
func RandomSuffix(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		result[i] = chars[num.Int64()]
	}
	return string(result)
}
