package model

type DashboardStats struct {
	TotalPosts     int `json:"totalPosts"`
	PublishedPosts int `json:"publishedPosts"`
	Drafts         int `json:"drafts"`
}
