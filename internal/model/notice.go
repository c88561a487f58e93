package model

// Notice is a short announcement shown in the notices section of the site.
type Notice struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        NoticeDate `json:"date"`
}
