package place

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFilter(t *testing.T) {
	testCases := []struct {
		name     string
		query    string
		category string
		want     Filter
	}{
		{"nothing", "", "", MatchAll{}},
		{"all sentinel", "", "all", MatchAll{}},
		{"blank query", "   ", "all", MatchAll{}},
		{"text only", "Ресторан", "", TextFilter{Text: "Ресторан"}},
		{"text trimmed", "  кофе ", "all", TextFilter{Text: "кофе"}},
		{"category only", "", "hotel", CategoryFilter{Type: TypeHotel}},
		{"both", "Номин", "hotel", TextAndCategory{Text: "Номин", Type: TypeHotel}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewFilter(tc.query, tc.category)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewFilter_UnknownCategory(t *testing.T) {
	_, err := NewFilter("", "museum")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Details, 1)
	assert.Equal(t, "type", vErr.Details[0].Field)
	assert.Contains(t, vErr.Message, "Invalid fields: type")
}

func TestNewPage(t *testing.T) {
	testCases := []struct {
		name          string
		number, limit int
		want          Page
	}{
		{"defaults", 0, 0, Page{Number: 1, Limit: 10}},
		{"negative", -3, -1, Page{Number: 1, Limit: 10}},
		{"explicit", 2, 2, Page{Number: 2, Limit: 2}},
		{"limit capped", 1, 500, Page{Number: 1, Limit: MaxLimit}},
		{"page capped", math.MaxInt, 10, Page{Number: MaxPage, Limit: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewPage(tc.number, tc.limit))
		})
	}
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, Page{Number: 1, Limit: 10}, ParsePage("", ""))
	assert.Equal(t, Page{Number: 1, Limit: 10}, ParsePage("abc", "NaN"))
	assert.Equal(t, Page{Number: 3, Limit: 5}, ParsePage("3", " 5 "))
	assert.Equal(t, Page{Number: 1, Limit: 10}, ParsePage("1.5", "2e3"))
	assert.Equal(t, Page{Number: MaxPage, Limit: 10}, ParsePage("9223372036854775807", "10"))
	assert.Equal(t, Page{Number: 1, Limit: 10}, ParsePage("99999999999999999999", "10"))
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Number: 1, Limit: 10}.Offset())
	assert.Equal(t, 2, Page{Number: 2, Limit: 2}.Offset())
	assert.Equal(t, 40, Page{Number: 5, Limit: 10}.Offset())

	huge := ParsePage("9223372036854775807", "100")
	assert.Positive(t, huge.Offset())
	assert.Equal(t, (MaxPage-1)*MaxLimit, huge.Offset())
}

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		total, limit, pages int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{6, 2, 3},
	}

	for _, tc := range testCases {
		got := NewPagination(Page{Number: 1, Limit: tc.limit}, tc.total)
		assert.Equal(t, tc.pages, got.Pages, "total=%d limit=%d", tc.total, tc.limit)
		assert.Equal(t, tc.total, got.Total)
	}
}

func TestWhereClause(t *testing.T) {
	testCases := []struct {
		name      string
		filter    Filter
		wantWhere string
		wantArgs  []any
	}{
		{"match all", MatchAll{}, "", []any{}},
		{"text", TextFilter{Text: "50%_off"},
			"WHERE (name ILIKE $1 OR description ILIKE $1)", []any{`%50\%\_off%`}},
		{"category", CategoryFilter{Type: TypeClinic}, "WHERE type = $1", []any{"clinic"}},
		{"both", TextAndCategory{Text: "кофе", Type: TypeRestaurant},
			"WHERE (name ILIKE $1 OR description ILIKE $1) AND type = $2", []any{"%кофе%", "restaurant"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := whereClause(tc.filter, 1)
			assert.Equal(t, tc.wantWhere, where)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
