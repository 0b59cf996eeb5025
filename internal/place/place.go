package place

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"yellowbooks/internal/validation"
)

// Type is the category of a listing.
type Type string

const (
	TypeRestaurant Type = "restaurant"
	TypeHotel      Type = "hotel"
	TypeShop       Type = "shop"
	TypeClinic     Type = "clinic"
	TypeService    Type = "service"
	TypeOther      Type = "other"
)

// Types lists every valid Type in display order.
var Types = []Type{TypeRestaurant, TypeHotel, TypeShop, TypeClinic, TypeService, TypeOther}

func (t Type) Valid() bool {
	for _, v := range Types {
		if t == v {
			return true
		}
	}
	return false
}

// OpeningHours maps a weekday to free-form opening text, e.g. "09:00-18:00".
type OpeningHours struct {
	Monday    string `json:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty"`
}

// Value stores opening hours as a JSON document.
func (o OpeningHours) Value() (driver.Value, error) {
	return json.Marshal(o)
}

// Scan reads opening hours from a JSON column.
func (o *OpeningHours) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*o = OpeningHours{}
		return nil
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("opening hours: cannot scan %T", src)
	}
}

// Place is a single business listing.
type Place struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         Type          `json:"type"`
	Description  string        `json:"description"`
	Address      string        `json:"address"`
	Phone        string        `json:"phone"`
	Email        *string       `json:"email"`
	Website      *string       `json:"website"`
	Images       []string      `json:"images"`
	Rating       *float64      `json:"rating"`
	ReviewCount  *int          `json:"reviewCount"`
	OpeningHours *OpeningHours `json:"openingHours"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// CreateInput is the body accepted when adding a listing.
type CreateInput struct {
	Name         string        `json:"name" validate:"notblank"`
	Type         Type          `json:"type" validate:"required,oneof=restaurant hotel shop clinic service other"`
	Description  string        `json:"description" validate:"notblank"`
	Address      string        `json:"address" validate:"notblank"`
	Phone        string        `json:"phone" validate:"notblank"`
	Email        *string       `json:"email" validate:"omitempty,email"`
	Website      *string       `json:"website" validate:"omitempty,url"`
	Images       []string      `json:"images" validate:"omitempty,dive,url"`
	Rating       *float64      `json:"rating" validate:"omitempty,gte=0,lte=5"`
	ReviewCount  *int          `json:"reviewCount" validate:"omitempty,gte=0"`
	OpeningHours *OpeningHours `json:"openingHours"`
}

func (in CreateInput) Validate() error {
	if errs := validation.Struct(in); len(errs) > 0 {
		return NewValidationError(errs)
	}
	return nil
}

// Patch holds a partial update. A nil field is left untouched; an empty
// email or website clears the stored value.
type Patch struct {
	Name         *string       `json:"name"`
	Type         *Type         `json:"type"`
	Description  *string       `json:"description"`
	Address      *string       `json:"address"`
	Phone        *string       `json:"phone"`
	Email        *string       `json:"email"`
	Website      *string       `json:"website"`
	Images       *[]string     `json:"images"`
	Rating       *float64      `json:"rating"`
	ReviewCount  *int          `json:"reviewCount"`
	OpeningHours *OpeningHours `json:"openingHours"`
}

// Validate checks the supplied fields only.
func (p Patch) Validate() error {
	var errs []validation.FieldError

	required := []struct {
		field string
		value *string
	}{
		{"name", p.Name},
		{"description", p.Description},
		{"address", p.Address},
		{"phone", p.Phone},
	}
	for _, r := range required {
		if r.value != nil {
			errs = append(errs, validation.Var(r.field, *r.value, "notblank")...)
		}
	}

	if p.Type != nil {
		errs = append(errs, validation.Var("type", string(*p.Type), "required,oneof=restaurant hotel shop clinic service other")...)
	}
	if p.Email != nil && *p.Email != "" {
		errs = append(errs, validation.Var("email", *p.Email, "email")...)
	}
	if p.Website != nil && *p.Website != "" {
		errs = append(errs, validation.Var("website", *p.Website, "url")...)
	}
	if p.Images != nil {
		errs = append(errs, validation.Var("images", *p.Images, "dive,url")...)
	}
	if p.Rating != nil {
		errs = append(errs, validation.Var("rating", *p.Rating, "gte=0,lte=5")...)
	}
	if p.ReviewCount != nil {
		errs = append(errs, validation.Var("reviewCount", *p.ReviewCount, "gte=0")...)
	}

	if len(errs) > 0 {
		return NewValidationError(errs)
	}
	return nil
}

// normalize trims the input; a blank email or website is treated as absent.
func (in *CreateInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = optionalString(in.Email)
	in.Website = optionalString(in.Website)
}

func (p *Patch) normalize() {
	for _, s := range []*string{p.Name, p.Description, p.Address, p.Phone, p.Email, p.Website} {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	if p.Images != nil && *p.Images == nil {
		empty := []string{}
		p.Images = &empty
	}
}

func optionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
