package models

// BlogPost is an editorial article. The blog ships with the storefront
// itself rather than the backend, so posts are static content.
type BlogPost struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	ImageURL string   `json:"imageUrl"`
	Tags     []string `json:"tags"`
	ReadTime string   `json:"readTime"`
}
