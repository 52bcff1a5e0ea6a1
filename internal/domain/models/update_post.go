package model

type UpdatePostDTO struct {
	Title      *string `json:"title,omitempty"`
	Content    *string `json:"content,omitempty"`
	Excerpt    *string `json:"excerpt,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
	Published  *bool   `json:"published,omitempty"`
}

func (u *UpdatePostDTO) IsEmpty() bool {
	return u == nil ||
		(u.Title == nil && u.Content == nil && u.Excerpt == nil && u.CoverImage == nil && u.Published == nil)
}
