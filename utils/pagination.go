package utils

const pageSizeDefault = 50
const pageSizeMax = 200

// GetPaginationParams resolves optional offset/limit query values into
// concrete ones. Missing or invalid values fall back to defaults and the
// limit is capped.
func GetPaginationParams(offset *int, limit *int) (int, int) {
	finalOffset := 0
	finalLimit := pageSizeDefault

	if offset != nil && *offset >= 0 {
		finalOffset = *offset
	}
	if limit != nil && *limit > 0 {
		finalLimit = min(*limit, pageSizeMax)
	}

	return finalOffset, finalLimit
}
