package repository

import (
	"context"

	"course-checkout/internal/domain/cart"
	"course-checkout/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CourseRepository struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

const coursesByIDsSQL = `
SELECT id, name, price, active, closed
FROM courses
WHERE id = ANY($1)`

// GetByIDs returns only the rows that exist; the caller reconciles the
// result against the requested ids.
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) ([]cart.Course, error) {
	rows, err := r.db.Query(ctx, coursesByIDsSQL, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query courses", err)
	}
	defer rows.Close()

	courses := make([]cart.Course, 0, len(ids))
	for rows.Next() {
		var c cart.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Price, &c.Active, &c.Closed); err != nil {
			return nil, infra.WrapRepoErr("failed to scan course row", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read course rows", err)
	}

	return courses, nil
}
