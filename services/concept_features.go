package services

import (
	"strings"

	"github.com/Spacespixel/ppsasset-new/models"
)

// DeriveConceptFeatures synthesizes concept display blocks from the free-text
// concept when the project has no curated feature rows. The text is split
// into at most two blocks; each block's first sentence becomes the title and
// the remainder the description, paired with the first gallery images so the
// page never renders an empty section.
func DeriveConceptFeatures(concept string, gallery []string) []models.ConceptFeature {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return nil
	}

	blocks := splitConceptText(concept)

	features := make([]models.ConceptFeature, 0, len(blocks))
	for i, block := range blocks {
		title, description := splitTitle(block)
		image := ""
		if len(gallery) > 0 {
			// Reuse the first image when there is no second one.
			if i < len(gallery) {
				image = gallery[i]
			} else {
				image = gallery[0]
			}
		}
		features = append(features, models.ConceptFeature{
			Title:       title,
			Description: description,
			Image:       image,
		})
	}
	return features
}

// splitConceptText splits the concept into blocks. Authored text uses blank
// lines as block separators; single-paragraph text is split at the first
// sentence boundary at or after the midpoint, measured in runes so Thai
// text splits at a character, never inside one.
func splitConceptText(concept string) []string {
	if strings.Contains(concept, "\n\n") {
		parts := strings.SplitN(concept, "\n\n", 2)
		blocks := make([]string, 0, 2)
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				blocks = append(blocks, p)
			}
		}
		if len(blocks) > 0 {
			return blocks
		}
	}

	runes := []rune(concept)
	mid := len(runes) / 2
	for i := mid; i < len(runes); i++ {
		if runes[i] == '.' && i+1 < len(runes)-1 {
			first := strings.TrimSpace(string(runes[:i+1]))
			second := strings.TrimSpace(string(runes[i+1:]))
			if first != "" && second != "" {
				return []string{first, second}
			}
			break
		}
	}
	return []string{concept}
}

// splitTitle takes everything up to the first period as the block title.
// Blocks without a period become title-only features.
func splitTitle(block string) (title, description string) {
	if i := strings.Index(block, "."); i >= 0 {
		title = strings.TrimSpace(block[:i])
		description = strings.TrimSpace(block[i+1:])
		if title != "" {
			return title, description
		}
	}
	return block, ""
}
