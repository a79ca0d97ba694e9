package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeCategory is an enumerated meal tag attached to a recipe
type RecipeCategory string

const (
	CategoryDesayuno RecipeCategory = "DESAYUNO"
	CategoryAlmuerzo RecipeCategory = "ALMUERZO"
	CategoryMerienda RecipeCategory = "MERIENDA"
	CategoryCena     RecipeCategory = "CENA"
	CategoryPostre   RecipeCategory = "POSTRE"
	CategorySnack    RecipeCategory = "SNACK"
)

// ParseCategory converts free-form input into a known category
func ParseCategory(s string) (RecipeCategory, error) {
	c := RecipeCategory(strings.ToUpper(strings.TrimSpace(s)))
	switch c {
	case CategoryDesayuno, CategoryAlmuerzo, CategoryMerienda, CategoryCena, CategoryPostre, CategorySnack:
		return c, nil
	}
	return "", fmt.Errorf("invalid recipe category %q", s)
}

// ParseCategories converts a list of raw category names, returning the
// canonical spellings
func ParseCategories(raw []string) ([]RecipeCategory, error) {
	categories := make([]RecipeCategory, 0, len(raw))
	for _, s := range raw {
		c, err := ParseCategory(s)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface. The array is stored as
// JSON text; sqlite keeps it as TEXT so the search predicates can match it.
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONBStringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the persisted recipe document. NormalizedTitle and
// NormalizedIngredients are lowercase, accent-stripped shadows of Title and
// Ingredients kept alongside for case/accent-insensitive search matching.
type Recipe struct {
	ID                    uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	Title                 string           `gorm:"size:255;not null" json:"title"`
	Categories            JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"categories"`
	Ingredients           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions          string           `gorm:"type:text;not null" json:"instructions"`
	Fit                   bool             `gorm:"not null" json:"fit"`
	ImageURL              string           `gorm:"size:512" json:"image_url,omitempty"`
	NormalizedTitle       string           `gorm:"size:255;index" json:"-"`
	NormalizedIngredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"-"`
}

// BeforeCreate assigns the identifier on insert
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
