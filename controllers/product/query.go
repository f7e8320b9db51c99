package productcontroller

import (
	"gorm.io/gorm"

	"github.com/kanak8148/SHOPING---APP/models"
)

// Page sizes used by the listing endpoints.
const (
	PerPageList    = 8  // /product-list/:page
	PerPageBrowse  = 12 // /get-product default browse
	PerPageRelated = 3  // /related-product/:pid/:cid
)

// Filters holds the optional criteria accepted by the filter/search endpoints.
// Checked carries category ids, Radio carries [min, max] price bounds —
// the field names mirror what the storefront sends.
type Filters struct {
	Checked []uint    `json:"checked"`
	Radio   []float64 `json:"radio"`
	Keyword string    `json:"keyword"`
	Page    int       `json:"page"`
}

// BuildQuery translates Filters into a single predicate on the product table.
// An empty Checked list or empty Radio range means "no filter", not
// "match nothing" — existing storefront clients rely on that.
func BuildQuery(db *gorm.DB, f Filters) *gorm.DB {
	q := db.Model(&models.Product{}).Omit("photo")

	if len(f.Checked) > 0 {
		q = q.Where("category_id IN ?", f.Checked)
	}
	if len(f.Radio) >= 2 {
		q = q.Where("price >= ? AND price <= ?", f.Radio[0], f.Radio[1])
	}
	if f.Keyword != "" {
		pattern := "%" + f.Keyword + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if f.Page > 0 {
		q = q.Offset((f.Page - 1) * PerPageList).Limit(PerPageList)
	}

	return q.Order("created_at DESC")
}
