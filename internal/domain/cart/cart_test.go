//go:build unit

package cart_test

import (
	"testing"

	"course-checkout/internal/domain/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCourse(id int64, name string, price int64) cart.Course {
	return cart.Course{ID: id, Name: name, Price: decimal.NewFromInt(price), Active: true}
}

func TestValidateItems(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		assert.ErrorIs(t, cart.ValidateItems(nil, false), cart.ErrEmptyCart)
		assert.ErrorIs(t, cart.ValidateItems([]cart.Item{}, true), cart.ErrEmptyCart)
	})

	t.Run("individual purchaser limited to one unit per course", func(t *testing.T) {
		items := []cart.Item{{CourseID: 5, Quantity: 2}}

		assert.ErrorIs(t, cart.ValidateItems(items, true), cart.ErrQuantityLimit)
		assert.NoError(t, cart.ValidateItems(items, false))
	})

	t.Run("repeated single units of one course count against the limit", func(t *testing.T) {
		items := []cart.Item{
			{CourseID: 5, Quantity: 1},
			{CourseID: 5, Quantity: 1},
		}

		assert.ErrorIs(t, cart.ValidateItems(items, true), cart.ErrQuantityLimit)
		assert.NoError(t, cart.ValidateItems(items, false))

		_, err := cart.BuildLines(items, []cart.Course{activeCourse(5, "Go Fundamentals", 100)}, true)
		assert.ErrorIs(t, err, cart.ErrQuantityLimit)
	})

	t.Run("individual purchaser may buy one unit of several courses", func(t *testing.T) {
		items := []cart.Item{
			{CourseID: 1, Quantity: 1},
			{CourseID: 2, Quantity: 1},
		}
		assert.NoError(t, cart.ValidateItems(items, true))
	})
}

func TestBuildLines(t *testing.T) {
	courses := []cart.Course{
		activeCourse(1, "Go Fundamentals", 100),
		activeCourse(2, "Advanced SQL", 250),
	}

	t.Run("builds lines for known active courses", func(t *testing.T) {
		items := []cart.Item{
			{CourseID: 1, Quantity: 2},
			{CourseID: 2, Quantity: 1},
		}

		lines, err := cart.BuildLines(items, courses, false)
		require.NoError(t, err)
		require.Len(t, lines, 2)

		assert.Equal(t, int64(1), lines[0].Course.ID)
		assert.Equal(t, int32(2), lines[0].Quantity)
		assert.True(t, lines[0].Subtotal().Equal(decimal.NewFromInt(200)))
	})

	t.Run("missing course ids are all named", func(t *testing.T) {
		items := []cart.Item{
			{CourseID: 1, Quantity: 1},
			{CourseID: 99, Quantity: 1},
			{CourseID: 100, Quantity: 1},
		}

		_, err := cart.BuildLines(items, courses, false)

		var missingErr *cart.MissingCoursesError
		require.ErrorAs(t, err, &missingErr)
		assert.Equal(t, []int64{99, 100}, missingErr.CourseIDs)
		assert.Contains(t, err.Error(), "99")
		assert.Contains(t, err.Error(), "100")
	})

	t.Run("zero-quantity items are dropped", func(t *testing.T) {
		items := []cart.Item{
			{CourseID: 1, Quantity: 0},
			{CourseID: 2, Quantity: 1},
		}

		lines, err := cart.BuildLines(items, courses, false)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, int64(2), lines[0].Course.ID)
	})

	t.Run("all quantities zero fails", func(t *testing.T) {
		items := []cart.Item{
			{CourseID: 1, Quantity: 0},
			{CourseID: 2, Quantity: 0},
		}

		_, err := cart.BuildLines(items, courses, false)
		assert.ErrorIs(t, err, cart.ErrNothingToBuy)
	})

	t.Run("inactive or closed course is named", func(t *testing.T) {
		catalog := []cart.Course{
			activeCourse(1, "Go Fundamentals", 100),
			{ID: 3, Name: "Retired Course", Price: decimal.NewFromInt(50), Active: false},
		}
		items := []cart.Item{
			{CourseID: 1, Quantity: 1},
			{CourseID: 3, Quantity: 1},
		}

		_, err := cart.BuildLines(items, catalog, false)

		var unavailableErr *cart.UnavailableCourseError
		require.ErrorAs(t, err, &unavailableErr)
		assert.Equal(t, int64(3), unavailableErr.CourseID)
		assert.Contains(t, err.Error(), "Retired Course")
	})

	t.Run("closed course is rejected even when active", func(t *testing.T) {
		catalog := []cart.Course{
			{ID: 4, Name: "Full Cohort", Price: decimal.NewFromInt(80), Active: true, Closed: true},
		}
		items := []cart.Item{{CourseID: 4, Quantity: 1}}

		_, err := cart.BuildLines(items, catalog, false)

		var unavailableErr *cart.UnavailableCourseError
		require.ErrorAs(t, err, &unavailableErr)
	})
}

func TestTotal(t *testing.T) {
	lines := []cart.Line{
		{Course: activeCourse(1, "Go Fundamentals", 100), Quantity: 2},
		{Course: activeCourse(2, "Advanced SQL", 250), Quantity: 1},
	}

	assert.True(t, cart.Total(lines).Equal(decimal.NewFromInt(450)))
	assert.True(t, cart.Total(nil).IsZero())
}
