package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart     = errors.New("cart has no items")
	ErrNothingToBuy  = errors.New("cart has no course with a positive quantity")
	ErrQuantityLimit = errors.New("individual purchasers may buy at most one unit per course")
)

// MissingCoursesError names every requested course id absent from the catalog.
type MissingCoursesError struct {
	CourseIDs []int64
}

func (e *MissingCoursesError) Error() string {
	ids := make([]string, len(e.CourseIDs))
	for i, id := range e.CourseIDs {
		ids[i] = fmt.Sprintf("%d", id)
	}
	return "courses not found: " + strings.Join(ids, ", ")
}

// UnavailableCourseError names the first inactive or closed course found.
type UnavailableCourseError struct {
	CourseID   int64
	CourseName string
}

func (e *UnavailableCourseError) Error() string {
	return fmt.Sprintf("course %q is not available for purchase", e.CourseName)
}

// Item is one requested cart entry, as supplied by the caller.
type Item struct {
	CourseID int64 `json:"courseId"`
	Quantity int32 `json:"quantity"`
}

// Course is the catalog snapshot a line is built against.
type Course struct {
	ID     int64
	Name   string
	Price  decimal.Decimal
	Active bool
	Closed bool
}

// Line is a course joined with its requested quantity. Only lines with
// quantity > 0 are ever built.
type Line struct {
	Course   Course
	Quantity int32
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Course.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ValidateItems runs the checks that must pass before any catalog lookup:
// a non-empty cart, and the one-unit-per-course rule for individual
// purchasers.
func ValidateItems(items []Item, individual bool) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}

	if individual {
		// Quantities are summed per course id so a repeated item cannot
		// slip past the one-unit rule.
		perCourse := make(map[int64]int32, len(items))
		for _, item := range items {
			perCourse[item.CourseID] += item.Quantity
			if perCourse[item.CourseID] >= 2 {
				return ErrQuantityLimit
			}
		}
	}

	return nil
}

// BuildLines runs the rest of the checkout validation pipeline once courses
// are resolved: missing catalog ids, zero-quantity filtering, and course
// availability. It is pure; the caller resolves courses beforehand.
func BuildLines(items []Item, courses []Course, individual bool) ([]Line, error) {
	if err := ValidateItems(items, individual); err != nil {
		return nil, err
	}

	byID := make(map[int64]Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}

	var missing []int64
	for _, item := range items {
		if _, ok := byID[item.CourseID]; !ok {
			missing = append(missing, item.CourseID)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingCoursesError{CourseIDs: missing}
	}

	lines := make([]Line, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		lines = append(lines, Line{Course: byID[item.CourseID], Quantity: item.Quantity})
	}
	if len(lines) == 0 {
		return nil, ErrNothingToBuy
	}

	for _, line := range lines {
		if !line.Course.Active || line.Course.Closed {
			return nil, &UnavailableCourseError{CourseID: line.Course.ID, CourseName: line.Course.Name}
		}
	}

	return lines, nil
}

// Total sums line subtotals without any discount applied.
func Total(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
