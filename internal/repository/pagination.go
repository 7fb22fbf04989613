package repository

import (
	"fmt"
	"math"

	"gorm.io/gorm"
)

// paginate counts the rows matched by filtered, then fetches one page of them.
// filtered is called once per query so the count and the fetch never share
// statement state; shape adds ordering and preloads to the fetch only.
func paginate[T any](filtered func() *gorm.DB, page, limit int, shape func(*gorm.DB) *gorm.DB) ([]T, int64, error) {
	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count rows: %w", err)
	}

	results := []T{}
	if total == 0 {
		return results, 0, nil
	}

	offset, ok := pageOffset(page, limit)
	if !ok {
		return results, total, nil
	}
	if err := shape(filtered()).Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return nil, 0, fmt.Errorf("fetch rows: %w", err)
	}
	return results, total, nil
}

// pageOffset returns the row offset of page. ok is false when the page lies
// beyond any representable offset, which can only be an empty page.
func pageOffset(page, limit int) (offset int, ok bool) {
	if limit < 1 {
		return 0, false
	}
	if page < 1 {
		page = 1
	}
	if page-1 > math.MaxInt/limit {
		return 0, false
	}
	return (page - 1) * limit, true
}

func orderByID(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + ".id")
	}
}
