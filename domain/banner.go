package domain

// Banner is one slide of the storefront carousel. Bg is a theme token the
// front end interprets.
type Banner struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Tag      string `json:"tag"`
	Bg       string `json:"bg"`
	Image    string `json:"image"`
}

type BannerDraft struct {
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle"`
	Tag      string `json:"tag"`
	Bg       string `json:"bg"`
	Image    string `json:"image" validate:"required"`
}

type BannerPatch struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Tag      *string `json:"tag,omitempty"`
	Bg       *string `json:"bg,omitempty"`
	Image    *string `json:"image,omitempty"`
}

func (b Banner) Draft() BannerDraft {
	return BannerDraft{
		Title:    b.Title,
		Subtitle: b.Subtitle,
		Tag:      b.Tag,
		Bg:       b.Bg,
		Image:    b.Image,
	}
}

func (d BannerDraft) Apply(patch BannerPatch) BannerDraft {
	if patch.Title != nil {
		d.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		d.Subtitle = *patch.Subtitle
	}
	if patch.Tag != nil {
		d.Tag = *patch.Tag
	}
	if patch.Bg != nil {
		d.Bg = *patch.Bg
	}
	if patch.Image != nil {
		d.Image = *patch.Image
	}
	return d
}
