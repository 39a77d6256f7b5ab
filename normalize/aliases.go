package normalize

// Alias tables: canonical field -> ordered candidate keys, highest priority
// first. The order matters; it mirrors what the deployed backend actually
// sends, newest spelling first. Keeping the mapping as data means a new
// backend spelling is a one-line change here plus a table test.

var bookAliases = map[string][]string{
	"id":            {"id", "_id", "Id", "bookId", "BookId"},
	"title":         {"title", "Title"},
	"author":        {"author", "Author"},
	"description":   {"description", "Description"},
	"difficulty":    {"difficulty", "Difficulty"},
	"language":      {"language", "Language"},
	"categoryId":    {"categoryId", "CategoryId", "category_id"},
	"audienceId":    {"audienceId", "AudienceId", "audience_id"},
	"pdfFileName":   {"pdfFileName", "PdfFileName", "pdf_file_name", "fileName"},
	"pdfUrl":        {"pdfUrl", "PdfUrl", "pdf_url"},
	"fileSize":      {"fileSize", "FileSize", "file_size"},
	"pageCount":     {"pageCount", "PageCount", "page_count"},
	"downloadCount": {"downloadCount", "DownloadCount", "download_count"},
	"rating":        {"rating", "Rating"},
	"createdAt":     {"createdAt", "CreatedAt", "created_at"},
	"updatedAt":     {"updatedAt", "UpdatedAt", "updated_at"},
	"createdById":   {"createdById", "CreatedById", "created_by_id"},
	"images":        {"images", "Images", "bookImages", "BookImages", "coverImages", "CoverImages", "cover_images"},
}

// coverAliases is the fallback when no image array was found: single
// cover-url fields, tried in this order.
var coverAliases = []string{
	"coverImage", "CoverImage", "cover_image",
	"coverUrl", "CoverUrl", "cover_url",
	"imageUrl", "ImageUrl", "image_url",
	"thumbnailUrl", "ThumbnailUrl", "thumbnail_url",
	"thumbnail", "Thumbnail",
	"image", "Image",
	"cover", "Cover",
}

var imageAliases = map[string][]string{
	"id":        {"id", "_id", "Id"},
	"bookId":    {"bookId", "BookId", "book_id"},
	"imageUrl":  {"imageUrl", "ImageUrl", "image_url", "url", "Url"},
	"createdAt": {"createdAt", "CreatedAt", "created_at"},
}

var userAliases = map[string][]string{
	"id":               {"id", "_id", "Id", "userId", "UserId", "user_id"},
	"email":            {"email", "Email"},
	"fullName":         {"fullName", "FullName", "full_name", "name", "Name"},
	"role":             {"role", "Role"},
	"isActive":         {"isActive", "IsActive", "is_active"},
	"isEmailConfirmed": {"isEmailConfirmed", "IsEmailConfirmed", "is_email_confirmed"},
	"createdAt":        {"createdAt", "CreatedAt", "created_at"},
	"lastLoginAt":      {"lastLoginAt", "LastLoginAt", "last_login_at"},
}

var authAliases = map[string][]string{
	"accessToken":  {"accessToken", "access_token", "AccessToken", "token"},
	"refreshToken": {"refreshToken", "refresh_token", "RefreshToken"},
	"expiresIn":    {"expiresIn", "expires_in", "ExpiresIn"},
	"id":           {"id", "userId", "user_id", "Id"},
	"email":        {"email", "Email"},
	"fullName":     {"fullName", "full_name", "FullName", "name", "Name"},
	"role":         {"role", "Role"},
}

var namedAliases = map[string][]string{
	"id":          {"id", "_id", "Id"},
	"name":        {"name", "Name"},
	"description": {"description", "Description"},
}

var pageAliases = map[string][]string{
	"items":           {"items", "Items"},
	"page":            {"page", "Page", "pageNumber", "page_number"},
	"pageSize":        {"pageSize", "PageSize", "page_size"},
	"totalCount":      {"totalCount", "TotalCount", "total_count", "total"},
	"totalPages":      {"totalPages", "TotalPages", "total_pages"},
	"hasNextPage":     {"hasNextPage", "HasNextPage", "has_next_page"},
	"hasPreviousPage": {"hasPreviousPage", "HasPreviousPage", "has_previous_page"},
}

var statsAliases = map[string][]string{
	"totalBooks":     {"totalBooks", "TotalBooks", "total_books"},
	"totalUsers":     {"totalUsers", "TotalUsers", "total_users"},
	"totalDownloads": {"totalDownloads", "TotalDownloads", "total_downloads"},
	"activeUsers":    {"activeUsers", "ActiveUsers", "active_users"},
	"topBooks":       {"topBooks", "TopBooks", "top_books"},
	"categoryStats":  {"categoryStats", "CategoryStats", "category_stats"},
}

var aboutAliases = map[string][]string{
	"id":           {"id", "_id", "Id"},
	"title":        {"title", "Title"},
	"content":      {"content", "Content"},
	"mission":      {"mission", "Mission"},
	"vision":       {"vision", "Vision"},
	"contactEmail": {"contactEmail", "ContactEmail", "contact_email"},
	"updatedAt":    {"updatedAt", "UpdatedAt", "updated_at"},
	"updatedById":  {"updatedById", "UpdatedById", "updated_by_id"},
}

// field resolves one canonical field through its table as a string.
func field(raw Raw, table map[string][]string, name string) string {
	return String(raw, "", table[name]...)
}
