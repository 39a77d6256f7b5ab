package models

// Statistics is the admin dashboard summary.
type Statistics struct {
	TotalBooks     int            `json:"totalBooks"`
	TotalUsers     int            `json:"totalUsers"`
	TotalDownloads int            `json:"totalDownloads"`
	ActiveUsers    int            `json:"activeUsers"`
	TopBooks       []TopBook      `json:"topBooks,omitempty"`
	CategoryStats  []CategoryStat `json:"categoryStats,omitempty"`
}

type TopBook struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	DownloadCount int    `json:"downloadCount"`
}

type CategoryStat struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	BookCount    int    `json:"bookCount"`
}
