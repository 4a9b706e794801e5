package entities

type SiteSettings struct {
	ID                 string       `json:"_id,omitempty"`
	SiteID             Slug         `json:"siteId"`
	Domain             string       `json:"domain"`
	SiteName           string       `json:"siteName"`
	Tagline            string       `json:"tagline,omitempty"`
	Logo               *Image       `json:"logo,omitempty"`
	Favicon            *Image       `json:"favicon,omitempty"`
	DefaultTitle       string       `json:"defaultTitle,omitempty"`
	DefaultDescription string       `json:"defaultDescription,omitempty"`
	OGImage            *Image       `json:"ogImage,omitempty"`
	Theme              *Theme       `json:"theme,omitempty"`
	SocialMedia        *SocialMedia `json:"socialMedia,omitempty"`
	GoogleAnalyticsID  *string      `json:"googleAnalyticsId"`
	Published          bool         `json:"published"`
}

type Theme struct {
	PrimaryColor string `json:"primaryColor,omitempty"`
	FontFamily   string `json:"fontFamily,omitempty"`
	BorderRadius string `json:"borderRadius,omitempty"`
	LayoutStyle  string `json:"layoutStyle,omitempty"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Pinterest string `json:"pinterest,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Youtube   string `json:"youtube,omitempty"`
	Email     string `json:"email,omitempty"`
}

// SiteOption is the short projection the authoring wizard offers as a choice.
type SiteOption struct {
	ID       string `json:"_id"`
	SiteID   *Slug  `json:"siteId"`
	SiteName string `json:"siteName"`
	Domain   string `json:"domain,omitempty"`
}

// Key returns the site identifier used for scoping, falling back to the document id.
func (s SiteOption) Key() string {
	if s.SiteID != nil && s.SiteID.Current != "" {
		return s.SiteID.Current
	}
	return s.ID
}
