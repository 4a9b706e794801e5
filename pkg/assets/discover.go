package assets

import (
	"errors"

	"Recipe-Publisher/entities"

	"github.com/rs/zerolog/log"
)

// ImageTarget is one unique image to mirror.
type ImageTarget struct {
	AssetID string
	URL     string
	// Source is "<document id>:<field path>" of the first occurrence.
	Source string
}

// DiscoverImages walks the image-bearing fields of docs and returns one target per
// asset id, in first-seen order. Images that cannot be resolved are skipped.
func DiscoverImages(docs []entities.MediaDocument, projectID, dataset string) []ImageTarget {
	seen := map[string]bool{}
	targets := []ImageTarget{}

	for _, doc := range docs {
		doc.VisitImages(func(path string, img *entities.Image) {
			resolved, err := ResolveImage(img, projectID, dataset)
			if err != nil {
				if !errors.Is(err, ErrNoImageAsset) {
					log.Warn().Err(err).Str("document", doc.ID).Str("field", path).Msg("skipping image")
				}
				return
			}
			if resolved.AssetID == "" {
				log.Warn().Err(ErrMissingImageAsset).Str("document", doc.ID).Str("field", path).Msg("skipping image")
				return
			}
			if seen[resolved.AssetID] {
				return
			}
			seen[resolved.AssetID] = true
			targets = append(targets, ImageTarget{
				AssetID: resolved.AssetID,
				URL:     resolved.URL,
				Source:  doc.ID + ":" + path,
			})
		})
	}

	return targets
}
