package place

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// placeRecord is the gorm mapping of the places table.
type placeRecord struct {
	ID           string         `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"not null"`
	Type         string         `gorm:"not null"`
	Description  string         `gorm:"not null"`
	Address      string         `gorm:"not null"`
	Phone        string         `gorm:"not null"`
	Email        *string
	Website      *string
	Images       pq.StringArray `gorm:"type:text[];not null"`
	Rating       *float64
	ReviewCount  *int
	OpeningHours *OpeningHours  `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (placeRecord) TableName() string {
	return "places"
}

func (rec placeRecord) toPlace() Place {
	images := []string(rec.Images)
	if images == nil {
		images = []string{}
	}
	return Place{
		ID:           rec.ID,
		Name:         rec.Name,
		Type:         Type(rec.Type),
		Description:  rec.Description,
		Address:      rec.Address,
		Phone:        rec.Phone,
		Email:        rec.Email,
		Website:      rec.Website,
		Images:       images,
		Rating:       rec.Rating,
		ReviewCount:  rec.ReviewCount,
		OpeningHours: rec.OpeningHours,
		CreatedAt:    rec.CreatedAt.UTC(),
		UpdatedAt:    rec.UpdatedAt.UTC(),
	}
}

func recordFromPlace(p *Place) placeRecord {
	return placeRecord{
		ID:           p.ID,
		Name:         p.Name,
		Type:         string(p.Type),
		Description:  p.Description,
		Address:      p.Address,
		Phone:        p.Phone,
		Email:        p.Email,
		Website:      p.Website,
		Images:       pq.StringArray(p.Images),
		Rating:       p.Rating,
		ReviewCount:  p.ReviewCount,
		OpeningHours: p.OpeningHours,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// GormRepo is a Repository backed by gorm, selected with STORE_DRIVER=gorm.
type GormRepo struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewGormRepo(db *gorm.DB, timeout time.Duration) *GormRepo {
	return &GormRepo{db: db, timeout: timeout}
}

func (r *GormRepo) session(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	return r.db.WithContext(timeoutCtx), cancel
}

func applyFilter(db *gorm.DB, f Filter) *gorm.DB {
	const textCond = `(name ILIKE ? OR description ILIKE ?)`

	switch f := f.(type) {
	case MatchAll:
		return db
	case TextFilter:
		pattern := likePattern(f.Text)
		return db.Where(textCond, pattern, pattern)
	case CategoryFilter:
		return db.Where("type = ?", string(f.Type))
	case TextAndCategory:
		pattern := likePattern(f.Text)
		return db.Where(textCond, pattern, pattern).Where("type = ?", string(f.Type))
	default:
		panic(fmt.Sprintf("place: unhandled filter %T", f))
	}
}

func (r *GormRepo) Find(ctx context.Context, f Filter, p Page) ([]Place, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var records []placeRecord
	err := applyFilter(db.Model(&placeRecord{}), f).
		Order("created_at DESC").
		Order("id DESC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&records).Error
	if err != nil {
		return nil, storeError("find places", err)
	}

	out := make([]Place, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.toPlace())
	}
	return out, nil
}

func (r *GormRepo) Count(ctx context.Context, f Filter) (int, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var total int64
	if err := applyFilter(db.Model(&placeRecord{}), f).Count(&total).Error; err != nil {
		return 0, storeError("count places", err)
	}
	return int(total), nil
}

func (r *GormRepo) Get(ctx context.Context, id string) (Place, error) {
	db, cancel := r.session(ctx)
	defer cancel()

	var rec placeRecord
	if err := db.First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Place{}, ErrNotFound
		}
		return Place{}, storeError("get place", err)
	}
	return rec.toPlace(), nil
}

func (r *GormRepo) Create(ctx context.Context, p *Place) error {
	db, cancel := r.session(ctx)
	defer cancel()

	rec := recordFromPlace(p)
	return storeError("create place", db.Create(&rec).Error)
}

func (r *GormRepo) Update(ctx context.Context, id string, patch Patch, updatedAt time.Time) (Place, error) {
	values := map[string]interface{}{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Type != nil {
		values["type"] = string(*patch.Type)
	}
	if patch.Description != nil {
		values["description"] = *patch.Description
	}
	if patch.Address != nil {
		values["address"] = *patch.Address
	}
	if patch.Phone != nil {
		values["phone"] = *patch.Phone
	}
	if patch.Email != nil {
		values["email"] = optionalString(patch.Email)
	}
	if patch.Website != nil {
		values["website"] = optionalString(patch.Website)
	}
	if patch.Images != nil {
		values["images"] = pq.StringArray(*patch.Images)
	}
	if patch.Rating != nil {
		values["rating"] = *patch.Rating
	}
	if patch.ReviewCount != nil {
		values["review_count"] = *patch.ReviewCount
	}
	if patch.OpeningHours != nil {
		values["opening_hours"] = *patch.OpeningHours
	}
	values["updated_at"] = gorm.Expr("GREATEST(?, created_at)", updatedAt)

	db, cancel := r.session(ctx)
	defer cancel()

	var rec placeRecord
	res := db.Model(&rec).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return Place{}, storeError("update place", res.Error)
	}
	if res.RowsAffected == 0 {
		return Place{}, ErrNotFound
	}
	return rec.toPlace(), nil
}

func (r *GormRepo) Delete(ctx context.Context, id string) error {
	db, cancel := r.session(ctx)
	defer cancel()

	res := db.Where("id = ?", id).Delete(&placeRecord{})
	if res.Error != nil {
		return storeError("delete place", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
