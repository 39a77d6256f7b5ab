package models

type AboutUs struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Mission      string `json:"mission"`
	Vision       string `json:"vision"`
	ContactEmail string `json:"contactEmail"`
	UpdatedAt    string `json:"updatedAt"`
	UpdatedByID  string `json:"updatedById,omitempty"`
}

type UpdateAboutRequest struct {
	Title        string `json:"title,omitempty"`
	Content      string `json:"content,omitempty"`
	Mission      string `json:"mission,omitempty"`
	Vision       string `json:"vision,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty" validate:"omitempty,email"`
}
