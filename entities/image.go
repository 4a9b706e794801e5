package entities

// ImageAsset is the asset half of an image field. Depending on the projection it is
// either a bare reference (Ref) or an expanded asset document (ID, URL).
type ImageAsset struct {
	ID               string `json:"_id,omitempty"`
	Ref              string `json:"_ref,omitempty"`
	Type             string `json:"_type,omitempty"`
	URL              string `json:"url,omitempty"`
	OriginalFilename string `json:"originalFilename,omitempty"`
}

type Image struct {
	Asset   *ImageAsset `json:"asset,omitempty"`
	Alt     string      `json:"alt,omitempty"`
	Caption string      `json:"caption,omitempty"`
}

// HasAsset reports whether the image points at anything resolvable.
func (i *Image) HasAsset() bool {
	if i == nil || i.Asset == nil {
		return false
	}
	return i.Asset.ID != "" || i.Asset.Ref != "" || i.Asset.URL != ""
}

// MediaDocument is the projection the asset mirror reads. Only the fields listed here
// are considered image-bearing.
type MediaDocument struct {
	ID             string               `json:"_id"`
	Type           string               `json:"_type"`
	Title          string               `json:"title,omitempty"`
	Name           string               `json:"name,omitempty"`
	MainImage      *Image               `json:"mainImage,omitempty"`
	Image          *Image               `json:"image,omitempty"`
	Images         []*Image             `json:"images,omitempty"`
	HeroImage      *Image               `json:"heroImage,omitempty"`
	Gallery        []*Image             `json:"gallery,omitempty"`
	ArticleContent *MediaArticleContent `json:"articleContent,omitempty"`
}

type MediaArticleContent struct {
	FirstImage  *Image   `json:"firstImage,omitempty"`
	SecondImage *Image   `json:"secondImage,omitempty"`
	Images      []*Image `json:"images,omitempty"`
}

// VisitImages calls fn for every image-bearing field of the document, in
// declaration order. Nil images are skipped.
func (d MediaDocument) VisitImages(fn func(path string, img *Image)) {
	visit := func(path string, img *Image) {
		if img != nil {
			fn(path, img)
		}
	}

	visit("mainImage", d.MainImage)
	visit("image", d.Image)
	for _, img := range d.Images {
		visit("images[]", img)
	}
	visit("heroImage", d.HeroImage)
	for _, img := range d.Gallery {
		visit("gallery[]", img)
	}
	if d.ArticleContent != nil {
		visit("articleContent.firstImage", d.ArticleContent.FirstImage)
		visit("articleContent.secondImage", d.ArticleContent.SecondImage)
		for _, img := range d.ArticleContent.Images {
			visit("articleContent.images[]", img)
		}
	}
}
