package assets

import (
	"errors"
	"fmt"
	"regexp"

	"Recipe-Publisher/entities"
)

const imageCDNBase = "https://cdn.sanity.io/images"

var (
	imageRefPattern = regexp.MustCompile(`^image-([a-f\d]+)-(\d+x\d+)-(\w+)$`)

	ErrNoImageAsset      = errors.New("image has no asset")
	ErrUnresolvableImage = errors.New("image asset cannot be resolved to a URL")
	ErrMissingImageAsset = errors.New("image asset has no id")
)

// ImageRef is a parsed store image reference: image-<hash>-<W>x<H>-<format>.
type ImageRef struct {
	Hash       string
	Dimensions string
	Format     string
}

func ParseImageRef(ref string) (ImageRef, bool) {
	m := imageRefPattern.FindStringSubmatch(ref)
	if m == nil {
		return ImageRef{}, false
	}
	return ImageRef{Hash: m[1], Dimensions: m[2], Format: m[3]}, true
}

func (r ImageRef) AssetID() string {
	return "image-" + r.Hash
}

func (r ImageRef) URL(projectID, dataset string) string {
	return fmt.Sprintf("%s/%s/%s/%s-%s.%s", imageCDNBase, projectID, dataset, r.Hash, r.Dimensions, r.Format)
}

type ResolvedImage struct {
	AssetID string
	URL     string
}

// ResolveImage turns an image field into a download URL and a stable asset id.
// An expanded asset URL wins over one built from the reference. The asset id is the
// asset's _id when present, otherwise derived from the reference hash.
func ResolveImage(img *entities.Image, projectID, dataset string) (ResolvedImage, error) {
	if !img.HasAsset() {
		return ResolvedImage{}, ErrNoImageAsset
	}
	asset := img.Asset

	ref, parsed := ParseImageRef(asset.Ref)
	if !parsed {
		ref, parsed = ParseImageRef(asset.ID)
	}

	resolved := ResolvedImage{AssetID: asset.ID, URL: asset.URL}
	if resolved.URL == "" && parsed {
		resolved.URL = ref.URL(projectID, dataset)
	}
	if resolved.AssetID == "" && parsed {
		resolved.AssetID = ref.AssetID()
	}

	if resolved.URL == "" {
		return resolved, fmt.Errorf("%w: %q", ErrUnresolvableImage, firstNonEmpty(asset.Ref, asset.ID))
	}
	return resolved, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
