package assets_test

import (
	"testing"

	"Recipe-Publisher/entities"
	"Recipe-Publisher/pkg/assets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseImageRef(t *testing.T) {
	ref, ok := assets.ParseImageRef("image-9f8e7d-1200x800-jpg")
	require.True(t, ok)
	assert.Equal(t, "9f8e7d", ref.Hash)
	assert.Equal(t, "1200x800", ref.Dimensions)
	assert.Equal(t, "jpg", ref.Format)
	assert.Equal(t, "image-9f8e7d", ref.AssetID())
	assert.Equal(t, "https://cdn.sanity.io/images/proj/production/9f8e7d-1200x800.jpg", ref.URL("proj", "production"))

	for _, bad := range []string{"", "image-logo", "file-abc-10x10-pdf", "image-XYZ-10x10-png"} {
		_, ok := assets.ParseImageRef(bad)
		assert.False(t, ok, bad)
	}
}

func TestResolveImage(t *testing.T) {
	t.Run("expanded url wins", func(t *testing.T) {
		img := &entities.Image{Asset: &entities.ImageAsset{ID: "image-abc-10x10-png", URL: "https://example.com/a.png"}}
		resolved, err := assets.ResolveImage(img, "proj", "production")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/a.png", resolved.URL)
		assert.Equal(t, "image-abc-10x10-png", resolved.AssetID)
	})

	t.Run("bare reference", func(t *testing.T) {
		img := &entities.Image{Asset: &entities.ImageAsset{Ref: "image-abc-10x20-webp"}}
		resolved, err := assets.ResolveImage(img, "proj", "staging")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.sanity.io/images/proj/staging/abc-10x20.webp", resolved.URL)
		assert.Equal(t, "image-abc", resolved.AssetID)
	})

	t.Run("unparsable reference", func(t *testing.T) {
		img := &entities.Image{Asset: &entities.ImageAsset{Ref: "image-logo"}}
		_, err := assets.ResolveImage(img, "proj", "production")
		assert.ErrorIs(t, err, assets.ErrUnresolvableImage)
	})

	t.Run("no asset", func(t *testing.T) {
		_, err := assets.ResolveImage(&entities.Image{Alt: "x"}, "proj", "production")
		assert.ErrorIs(t, err, assets.ErrNoImageAsset)

		_, err = assets.ResolveImage(nil, "proj", "production")
		assert.ErrorIs(t, err, assets.ErrNoImageAsset)
	})
}

func TestDiscoverImagesDeduplicates(t *testing.T) {
	shared := func() *entities.Image {
		return &entities.Image{Asset: &entities.ImageAsset{ID: "image-aaa-10x10-jpg", URL: "https://cdn.example/aaa.jpg"}}
	}
	docs := []entities.MediaDocument{
		{
			ID:        "recipe-1",
			MainImage: shared(),
			ArticleContent: &entities.MediaArticleContent{
				FirstImage: shared(),
				Images: []*entities.Image{
					{Asset: &entities.ImageAsset{Ref: "image-bbb-20x20-png"}},
				},
			},
		},
		{
			ID:      "author-1",
			Image:   shared(),
			Gallery: []*entities.Image{nil, {Asset: &entities.ImageAsset{Ref: "image-logo"}}},
		},
	}

	targets := assets.DiscoverImages(docs, "proj", "production")
	require.Len(t, targets, 2)
	assert.Equal(t, "image-aaa-10x10-jpg", targets[0].AssetID)
	assert.Equal(t, "recipe-1:mainImage", targets[0].Source)
	assert.Equal(t, "image-bbb", targets[1].AssetID)
	assert.Equal(t, "https://cdn.sanity.io/images/proj/production/bbb-20x20.png", targets[1].URL)
}

func TestDiscoverImagesDeduplicatesWithinArticleImages(t *testing.T) {
	docs := []entities.MediaDocument{
		{
			ID: "recipe-2",
			ArticleContent: &entities.MediaArticleContent{
				Images: []*entities.Image{
					{Asset: &entities.ImageAsset{Ref: "image-ccc-30x30-jpg"}},
					{Asset: &entities.ImageAsset{Ref: "image-ddd-40x40-png"}},
					{Asset: &entities.ImageAsset{Ref: "image-ccc-30x30-jpg"}},
				},
			},
		},
	}

	targets := assets.DiscoverImages(docs, "proj", "production")
	require.Len(t, targets, 2)
	assert.Equal(t, "image-ccc", targets[0].AssetID)
	assert.Equal(t, "recipe-2:articleContent.images[]", targets[0].Source)
	assert.Equal(t, "https://cdn.sanity.io/images/proj/production/ccc-30x30.jpg", targets[0].URL)
	assert.Equal(t, "image-ddd", targets[1].AssetID)
}
