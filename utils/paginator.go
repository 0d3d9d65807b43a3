package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Page is one fixed-size window over an ordered query result.
type Page struct {
	Number   int
	PerPage  int
	NumPages int
	Count    int64
}

func (p Page) HasPrevious() bool       { return p.Number > 1 }
func (p Page) HasNext() bool           { return p.Number < p.NumPages }
func (p Page) PreviousPageNumber() int { return p.Number - 1 }
func (p Page) NextPageNumber() int     { return p.Number + 1 }

// PageNumbers lists 1..NumPages for the pagination widget.
func (p Page) PageNumbers() []int {
	result := make([]int, p.NumPages)
	for i := range result {
		result[i] = i + 1
	}
	return result
}

// Paginate slices query into pages of perPage items and loads the page
// requested by the "page" query parameter into dest. A missing or
// non-numeric page number means the first page; a numeric one outside
// the valid range clamps to the last page.
func Paginate(c *gin.Context, query *gorm.DB, perPage int, dest interface{}) (Page, error) {
	page := Page{Number: 1, PerPage: perPage}
	if err := query.Session(&gorm.Session{}).Count(&page.Count).Error; err != nil {
		return page, err
	}
	page.NumPages = int((page.Count + int64(perPage) - 1) / int64(perPage))
	if page.NumPages < 1 {
		page.NumPages = 1
	}
	if n, err := strconv.Atoi(c.Query("page")); err == nil {
		if n >= 1 && n <= page.NumPages {
			page.Number = n
		} else {
			page.Number = page.NumPages
		}
	}
	err := query.
		Offset((page.Number - 1) * perPage).
		Limit(perPage).
		Find(dest).Error
	return page, err
}
