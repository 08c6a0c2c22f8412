package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keyed is implemented by every model; Key returns the surrogate key.
type Keyed interface {
	Key() uint
}

// Page is an offset window. Limit 0 yields an empty result.
type Page struct {
	Skip  int
	Limit int
}

const DefaultLimit = 100

// crud holds the single-table operations shared by all entities. Relation
// fields on models exist only to declare foreign keys, so writes omit them
// and reads never preload.
type crud[T Keyed] struct{}

func (crud[T]) Create(ctx context.Context, db *gorm.DB, rec *T) error {
	err := db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error
	return classify(db, err)
}

func (crud[T]) FindByID(ctx context.Context, db *gorm.DB, id uint) (*T, error) {
	var rec T
	if err := db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, classify(db, err)
	}
	return &rec, nil
}

func (c crud[T]) List(ctx context.Context, db *gorm.DB, page Page) ([]T, error) {
	return c.find(ctx, db, page, nil)
}

// FindByIDs loads every row whose key is in ids with one query.
func (crud[T]) FindByIDs(ctx context.Context, db *gorm.DB, ids []uint) (map[uint]T, error) {
	out := make(map[uint]T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []T
	if err := db.WithContext(ctx).Find(&rows, ids).Error; err != nil {
		return nil, classify(db, err)
	}
	for _, r := range rows {
		out[r.Key()] = r
	}
	return out, nil
}

func (crud[T]) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, classify(db, err)
}

// listWhere returns every row whose column equals value, in key order.
func (c crud[T]) listWhere(ctx context.Context, db *gorm.DB, column string, value any) ([]T, error) {
	return c.find(ctx, db, Page{Limit: -1}, clause.Eq{Column: clause.Column{Name: column}, Value: value})
}

func (crud[T]) find(ctx context.Context, db *gorm.DB, page Page, cond clause.Expression) ([]T, error) {
	rows := make([]T, 0)
	if page.Limit == 0 {
		return rows, nil
	}

	q := db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Table: clause.CurrentTable, Name: clause.PrimaryKey}})
	if cond != nil {
		q = q.Where(cond)
	}
	if page.Skip > 0 {
		q = q.Offset(page.Skip)
	}
	if page.Limit > 0 {
		q = q.Limit(page.Limit)
	}

	if err := q.Find(&rows).Error; err != nil {
		return nil, classify(db, err)
	}
	return rows, nil
}
