package curriculum

import (
	"context"
	"fmt"
	"strings"

	"video-id-finder/core/database"
	"video-id-finder/core/reconcile"
	"video-id-finder/feature/curriculum/models"

	"gorm.io/gorm"
)

// Store reads curricula from the relational curriculum store.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new curriculum store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// orderSegments keeps segments in group, then position, order when preloading.
func orderSegments(db *gorm.DB) *gorm.DB {
	return db.Order("group_index, position")
}

// FindByIdentifier returns the course whose nid equals identifier, or nil.
func (s *Store) FindByIdentifier(ctx context.Context, identifier string) (*reconcile.Curriculum, error) {
	var courses []models.Course
	err := s.db.WithContext(ctx).
		Preload("Segments", orderSegments).
		Where("nid = ?", identifier).
		Limit(1).
		Find(&courses).Error
	if err != nil {
		return nil, reconcile.StoreError(err, fmt.Sprintf("failed to find course %q", identifier))
	}
	if len(courses) == 0 {
		return nil, nil
	}

	c := courses[0].ToCurriculum()
	return &c, nil
}

// FindByTitlePattern returns every course whose title contains pattern, ignoring case.
// LIKE wildcards inside pattern are matched literally.
func (s *Store) FindByTitlePattern(ctx context.Context, pattern string) ([]reconcile.Curriculum, error) {
	like := "%" + escapeLike(strings.ToLower(pattern)) + "%"

	var courses []models.Course
	err := s.db.WithContext(ctx).
		Preload("Segments", orderSegments).
		Where("LOWER(title) LIKE ? ESCAPE '!'", like).
		Order("id").
		Find(&courses).Error
	if err != nil {
		return nil, reconcile.StoreError(err, fmt.Sprintf("failed to find courses matching %q", pattern))
	}

	result := make([]reconcile.Curriculum, 0, len(courses))
	for _, c := range courses {
		result = append(result, c.ToCurriculum())
	}
	return result, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// requiredColumns lists the columns the store reads, per table.
var requiredColumns = map[string][]string{
	models.Course{}.TableName():        {"id", "nid", "title"},
	models.CourseSegment{}.TableName(): {"id", "course_id", "group_index", "position", "segment_id", "title"},
}

// RequiredColumns returns the columns the store reads, keyed by table.
func RequiredColumns() map[string][]string {
	out := make(map[string][]string, len(requiredColumns))
	for table, cols := range requiredColumns {
		out[table] = append([]string(nil), cols...)
	}
	return out
}

// VerifySchema checks that the curriculum tables carry every column the store reads.
func VerifySchema(db *gorm.DB) error {
	for _, table := range []string{models.Course{}.TableName(), models.CourseSegment{}.TableName()} {
		missing, err := database.MissingColumns(db, table, requiredColumns[table])
		if err != nil {
			return reconcile.StoreError(err, "failed to inspect curriculum schema")
		}
		if len(missing) > 0 {
			return reconcile.StoreError(
				fmt.Errorf("table %s is missing columns: %s", table, strings.Join(missing, ", ")),
				"curriculum schema mismatch",
			)
		}
	}
	return nil
}

// Migrate creates or updates the curriculum tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Course{}, &models.CourseSegment{}); err != nil {
		return reconcile.StoreError(err, "failed to migrate curriculum tables")
	}
	return nil
}
