package service

import (
	"strings"

	"gorm.io/gorm"

	"recetario/internal/types"
)

// applyRecipeFilters translates search parameters into store predicates.
// All active predicates are ANDed; with no filters set the query matches
// every record. Free-text search splits into keywords, each of which must
// appear in the normalized title or the normalized ingredients (AND across
// keywords, OR across fields within a keyword).
func applyRecipeFilters(q *gorm.DB, p types.RecipeSearchParams) *gorm.DB {
	if len(p.Categories) > 0 {
		col := jsonTextColumn(q, "categories")
		clauses := make([]string, 0, len(p.Categories))
		args := make([]interface{}, 0, len(p.Categories))
		for _, c := range p.Categories {
			clauses = append(clauses, col+" LIKE ?")
			args = append(args, `%"`+string(c)+`"%`)
		}
		q = q.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	if p.Fit != nil {
		q = q.Where("fit = ?", *p.Fit)
	}

	if search := strings.TrimSpace(p.Search); search != "" {
		ingredients := jsonTextColumn(q, "normalized_ingredients")
		for _, keyword := range strings.Fields(search) {
			like := "%" + escapeLike(Normalize(keyword)) + "%"
			q = q.Where(`(normalized_title LIKE ? ESCAPE '\' OR `+ingredients+` LIKE ? ESCAPE '\')`, like, like)
		}
	}

	return q
}

// escapeLike neutralizes LIKE metacharacters so keywords match literally
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// jsonTextColumn addresses a JSONB column as text. Postgres needs the cast;
// sqlite already stores the array as its JSON text.
func jsonTextColumn(q *gorm.DB, col string) string {
	if q.Dialector.Name() == "postgres" {
		return col + "::text"
	}
	return col
}
