package services

// QuestionsPerPage is the fixed page size of every paginated listing.
const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages outside the list,
// including pages below 1, are empty rather than an error.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	pages := (len(items) + size - 1) / size
	if page > pages {
		return []T{}
	}
	start := (page - 1) * size
	end := min(start+size, len(items))
	return items[start:end]
}
