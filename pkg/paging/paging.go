package paging

// PageCount derives the number of pages from a server-reported total.
// The server owns filtering and pagination; the client only trusts total.
// An empty result set still has one (empty) page.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	count := (total + pageSize - 1) / pageSize
	if count < 1 {
		return 1
	}
	return count
}

// Clamp forces page into [1, pageCount].
func Clamp(page, pageCount int) int {
	if page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// Window returns at most width page numbers centered on current,
// shifted as needed to stay inside [1, pageCount].
func Window(current, pageCount, width int) []int {
	if width < 1 {
		width = 1
	}
	if pageCount < 1 {
		pageCount = 1
	}
	current = Clamp(current, pageCount)

	start := current - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > pageCount {
		end = pageCount
		start = end - width + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
