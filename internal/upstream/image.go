package upstream

import "strings"

const placeholderImage = "https://via.placeholder.com/150?text=Parfum"

// ResolveImageURL joins a relative image reference with the configured
// base URL. Absolute references pass through, empty ones get a placeholder.
func ResolveImageURL(baseURL, ref string) string {
	if ref == "" {
		return placeholderImage
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return strings.TrimRight(baseURL, "/") + ref
}
