package recipes

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// TagSeparator joins tag names in Summary.TagList. A check constraint keeps it
// out of tag names.
const TagSeparator = ","

// Filter narrows the listing. Zero values mean no constraint.
type Filter struct {
	Tag         string
	MaxPrepTime *int
	Ingredient  string
}

// IsZero reports whether no filter is set.
func (f Filter) IsZero() bool {
	return f.Tag == "" && f.MaxPrepTime == nil && f.Ingredient == ""
}

// Summary is one row of the listing: exactly one per recipe.
type Summary struct {
	ID              uint      `gorm:"column:recipe_id"`
	Name            string    `gorm:"column:name"`
	Instructions    string    `gorm:"column:instructions"`
	PrepTimeMinutes *int      `gorm:"column:prep_time_minutes"`
	CostEstimate    *float64  `gorm:"column:cost_estimate"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	ImageURL        *string   `gorm:"column:image_url"`
	ImageAlt        *string   `gorm:"column:image_alt"`
	AvgRating       *float64  `gorm:"column:avg_rating"`
	ReviewCount     int64     `gorm:"column:review_count"`
	TagList         string    `gorm:"column:tags"`
	AuthorName      *string   `gorm:"column:author_name"`
}

// Tags splits TagList. It returns nil for an untagged recipe.
func (s Summary) Tags() []string {
	if s.TagList == "" {
		return nil
	}
	return strings.Split(s.TagList, TagSeparator)
}

// canonicalImage joins the single image with the smallest file path (then the
// smallest id) so that a recipe with many images still yields one row.
const canonicalImage = `LEFT JOIN images img ON img.image_id = (
	SELECT ci.image_id FROM images ci
	WHERE ci.recipe_id = r.recipe_id
	ORDER BY ci.file_path ASC, ci.image_id ASC
	LIMIT 1)`

const (
	tagFilter = `r.recipe_id IN (
	SELECT ft.recipe_id FROM recipe_tags ft
	JOIN dietary_tags fdt ON fdt.tag_id = ft.tag_id
	WHERE fdt.tag_name = ?)`

	prepTimeFilter = `(r.prep_time_minutes IS NULL OR r.prep_time_minutes <= ?)`

	ingredientFilter = `EXISTS (
	SELECT 1 FROM recipe_ingredients fri
	JOIN ingredients fing ON fing.ingredient_id = fri.ingredient_id
	WHERE fri.recipe_id = r.recipe_id AND LOWER(fing.name) LIKE ? ESCAPE '\')`
)

// List returns the recipes matching every supplied filter ordered by name, ties
// by id. Tags, the canonical image and the review aggregates are computed per
// recipe in subqueries and the filters are id predicates, so no join can fan
// a recipe out into several rows.
func (s *Store) List(ctx context.Context, filter Filter) ([]Summary, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Table("recipes AS r").
		Select(summaryColumns(db)).
		Joins("LEFT JOIN users u ON u.user_id = r.author_id").
		Joins(canonicalImage)

	if filter.Tag != "" {
		query = query.Where(tagFilter, filter.Tag)
	}
	if filter.MaxPrepTime != nil {
		query = query.Where(prepTimeFilter, *filter.MaxPrepTime)
	}
	if filter.Ingredient != "" {
		query = query.Where(ingredientFilter, likePattern(filter.Ingredient))
	}

	var rows []Summary
	if err := query.Order("r.name ASC, r.recipe_id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].TagList = normalizeTags(rows[i].TagList)
	}
	return rows, nil
}

func summaryColumns(db *gorm.DB) string {
	return strings.Join([]string{
		"r.recipe_id",
		"r.name",
		"r.instructions",
		"r.prep_time_minutes",
		"r.cost_estimate",
		"r.created_at",
		"img.file_path AS image_url",
		"img.alt_text AS image_alt",
		"(SELECT CAST(AVG(ar.rating) AS DOUBLE PRECISION) FROM reviews ar WHERE ar.recipe_id = r.recipe_id) AS avg_rating",
		"(SELECT COUNT(*) FROM reviews cr WHERE cr.recipe_id = r.recipe_id) AS review_count",
		"COALESCE((SELECT " + tagAggregate(db) + " FROM recipe_tags rt JOIN dietary_tags dt ON dt.tag_id = rt.tag_id WHERE rt.recipe_id = r.recipe_id), '') AS tags",
		"u.name AS author_name",
	}, ", ")
}

// tagAggregate returns the dialect's DISTINCT string aggregation of dt.tag_name.
func tagAggregate(db *gorm.DB) string {
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return "string_agg(DISTINCT dt.tag_name, '" + TagSeparator + "' ORDER BY dt.tag_name)"
	}
	// sqlite only accepts the default separator together with DISTINCT.
	return "GROUP_CONCAT(DISTINCT dt.tag_name)"
}

// normalizeTags sorts the aggregated names; sqlite gives no ordering guarantee
// for group_concat.
func normalizeTags(list string) string {
	if list == "" {
		return ""
	}
	names := strings.Split(list, TagSeparator)
	sort.Strings(names)
	return strings.Join(names, TagSeparator)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive substring pattern with LIKE
// metacharacters in the input taken literally.
func likePattern(substr string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(substr)) + "%"
}
