package model

type CreatePostDTO struct {
	Title      string  `json:"title"`
	Content    string  `json:"content"`
	Excerpt    *string `json:"excerpt,omitempty"`
	CoverImage *string `json:"coverImage,omitempty"`
	Published  *bool   `json:"published,omitempty"`
	AuthorID   string  `json:"authorId"`
}
