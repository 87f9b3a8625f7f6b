package services

import "gorm.io/gorm"

// Page is a zero-indexed pagination window. A nil *Page means the caller
// wants every row; totalData is always the full count either way.
type Page struct {
	Number int
	Size   int
}

func (p *Page) Valid() bool {
	return p.Number >= 0 && p.Size > 0
}

func applyPage(query *gorm.DB, page *Page) *gorm.DB {
	if page == nil {
		return query
	}
	return query.Limit(page.Size).Offset(page.Number * page.Size)
}
