package shared

import "github.com/gauravjat135/galaxy-medical-store/internal/constants"

// NormalizePagination clamps page and page size into the allowed window.
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}
