package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("cena")
	assert.NoError(t, err)
	assert.Equal(t, CategoryCena, c)

	c, err = ParseCategory("  Postre ")
	assert.NoError(t, err)
	assert.Equal(t, CategoryPostre, c)

	_, err = ParseCategory("brunch")
	assert.Error(t, err)
}

func TestParseCategoriesRejectsUnknown(t *testing.T) {
	categories, err := ParseCategories([]string{"CENA", "snack"})
	assert.NoError(t, err)
	assert.Equal(t, []RecipeCategory{CategoryCena, CategorySnack}, categories)

	_, err = ParseCategories([]string{"CENA", "bogus"})
	assert.Error(t, err)
}

func TestJSONBStringArrayValue(t *testing.T) {
	empty, err := JSONBStringArray(nil).Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", empty)

	value, err := JSONBStringArray{"harina", "queso"}.Value()
	assert.NoError(t, err)
	assert.JSONEq(t, `["harina","queso"]`, value.(string))
}

func TestJSONBStringArrayScan(t *testing.T) {
	var a JSONBStringArray
	assert.NoError(t, a.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, JSONBStringArray{"a", "b"}, a)

	var fromString JSONBStringArray
	assert.NoError(t, fromString.Scan(`["c"]`))
	assert.Equal(t, JSONBStringArray{"c"}, fromString)

	var fromNil JSONBStringArray
	assert.NoError(t, fromNil.Scan(nil))
	assert.Equal(t, JSONBStringArray{}, fromNil)

	var fromInt JSONBStringArray
	assert.Error(t, fromInt.Scan(42))
}

func TestBeforeCreateAssignsID(t *testing.T) {
	r := &Recipe{}
	assert.NoError(t, r.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, r.ID)

	fixed := uuid.New()
	r = &Recipe{ID: fixed}
	assert.NoError(t, r.BeforeCreate(nil))
	assert.Equal(t, fixed, r.ID)
}
