package normalize

import "github.com/sciencehub/hubctl/models"

// User normalizes one raw user object. Role defaults to User; boolean flags
// keep an explicit false from the backend.
func (n *Normalizer) User(raw Raw) models.User {
	return models.User{
		ID:               field(raw, userAliases, "id"),
		Email:            field(raw, userAliases, "email"),
		FullName:         field(raw, userAliases, "fullName"),
		Role:             String(raw, models.RoleUser, userAliases["role"]...),
		IsActive:         Bool(raw, false, userAliases["isActive"]...),
		IsEmailConfirmed: Bool(raw, false, userAliases["isEmailConfirmed"]...),
		CreatedAt:        field(raw, userAliases, "createdAt"),
		LastLoginAt:      field(raw, userAliases, "lastLoginAt"),
	}
}

// Auth normalizes a login or refresh response, tolerating camelCase,
// snake_case and the bare "token" spelling.
func (n *Normalizer) Auth(raw Raw) models.AuthResponse {
	return models.AuthResponse{
		AccessToken:  field(raw, authAliases, "accessToken"),
		RefreshToken: field(raw, authAliases, "refreshToken"),
		ExpiresIn:    Int(raw, 3600, authAliases["expiresIn"]...),
		ID:           field(raw, authAliases, "id"),
		Email:        field(raw, authAliases, "email"),
		FullName:     field(raw, authAliases, "fullName"),
		Role:         String(raw, models.RoleUser, authAliases["role"]...),
	}
}

// Statistics normalizes the admin dashboard payload.
func (n *Normalizer) Statistics(raw Raw) models.Statistics {
	stats := models.Statistics{
		TotalBooks:     Int(raw, 0, statsAliases["totalBooks"]...),
		TotalUsers:     Int(raw, 0, statsAliases["totalUsers"]...),
		TotalDownloads: Int(raw, 0, statsAliases["totalDownloads"]...),
		ActiveUsers:    Int(raw, 0, statsAliases["activeUsers"]...),
	}
	if list, ok := listValue(raw, statsAliases["topBooks"]...); ok {
		for _, el := range list {
			if obj, ok := AsRaw(el); ok {
				stats.TopBooks = append(stats.TopBooks, models.TopBook{
					ID:            field(obj, bookAliases, "id"),
					Title:         field(obj, bookAliases, "title"),
					Author:        field(obj, bookAliases, "author"),
					DownloadCount: Int(obj, 0, bookAliases["downloadCount"]...),
				})
			}
		}
	}
	if list, ok := listValue(raw, statsAliases["categoryStats"]...); ok {
		for _, el := range list {
			if obj, ok := AsRaw(el); ok {
				stats.CategoryStats = append(stats.CategoryStats, models.CategoryStat{
					CategoryID:   String(obj, "", "categoryId", "CategoryId", "category_id"),
					CategoryName: String(obj, "", "categoryName", "CategoryName", "category_name"),
					BookCount:    Int(obj, 0, "bookCount", "BookCount", "book_count"),
				})
			}
		}
	}
	return stats
}

// About normalizes the about-us payload.
func (n *Normalizer) About(raw Raw) models.AboutUs {
	return models.AboutUs{
		ID:           field(raw, aboutAliases, "id"),
		Title:        field(raw, aboutAliases, "title"),
		Content:      field(raw, aboutAliases, "content"),
		Mission:      field(raw, aboutAliases, "mission"),
		Vision:       field(raw, aboutAliases, "vision"),
		ContactEmail: field(raw, aboutAliases, "contactEmail"),
		UpdatedAt:    field(raw, aboutAliases, "updatedAt"),
		UpdatedByID:  field(raw, aboutAliases, "updatedById"),
	}
}

func listValue(raw Raw, keys ...string) ([]any, bool) {
	v, ok := Lookup(raw, keys...)
	if !ok {
		return nil, false
	}
	list, ok := v.([]any)
	return list, ok
}
