package utils

// NormalizeLimit applies the default when limit is unset and clamps
// negatives. List endpoints accept an optional limit query parameter,
// so zero means "not provided".
func NormalizeLimit(limit, defaultLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}

// PageOffset returns the query offset for a zero-based page
func PageOffset(page, limit int) int {
	if page < 0 {
		return 0
	}
	return page * limit
}
