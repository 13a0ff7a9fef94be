package utils

import "strings"

// TitleCaseSlug converts a slug into the Title-Case file name prefix the
// image pipeline uses, e.g. "ricco-town-wongwaen-lamlukka" becomes
// "Ricco-Town-Wongwaen-Lamlukka".
func TitleCaseSlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, "-")
}

// FallbackHeroPath returns the conventional facility image path used when a
// project has no image rows yet. The path follows the upload pipeline's
// naming convention, so the file usually exists even before the rows do.
func FallbackHeroPath(slug string) string {
	return "/images/projects/" + slug + "/" + TitleCaseSlug(slug) + "-Facility-1.png"
}
