package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"hoteladmin/shared/constant"
	"hoteladmin/shared/dto"
	"hoteladmin/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 12, 1, 8, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 12, 2, 8, 0, 0, 0, time.UTC)

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "admin",
		ModifiedBy: "manager",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, modifiedAt.Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "admin", metadata.CreatedBy)
	assert.Equal(t, "manager", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=name&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "nothing provided without defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid numbers fall back to defaults",
			query:          "page=abc&limit=-5",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit capped",
			query:    "limit=5000&sort_dir=desc",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit, SortDir: dto.SortDirDesc},
		},
		{
			name:     "unknown sort direction ignored",
			query:    "sort_by=name&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/hotels?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_AllowSort(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected dto.QueryParams
	}{
		{
			name:     "allowed column kept",
			params:   dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
			expected: dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
		},
		{
			name:     "unknown column replaced",
			params:   dto.QueryParams{SortBy: "name; DROP TABLE hotels", SortDir: dto.SortDirAsc},
			expected: dto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: dto.SortDirAsc},
		},
		{
			name:     "missing direction defaulted",
			params:   dto.QueryParams{},
			expected: dto.QueryParams{SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.AllowSort("name", "location", constant.DefaultValueSortBy)

			assert.Equal(t, tt.expected, tt.params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "id", Value: "h-1", Operator: dto.FilterOperatorEq, Table: "hotels"},
			wantWhere: "hotels.id = :id",
			wantArgs:  map[string]any{"id": "h-1"},
		},
		{
			name:      "like wraps value",
			filter:    dto.Filter{Field: "name", Value: "plaza", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name) ",
			wantArgs:  map[string]any{"name": "%plaza%"},
		},
		{
			name:      "in expands slice",
			filter:    dto.Filter{Field: "room_type_id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			wantWhere: "room_type_id IN (:room_type_id_0, :room_type_id_1) ",
			wantArgs:  map[string]any{"room_type_id_0": "a", "room_type_id_1": "b"},
		},
		{
			name:      "in over empty slice matches nothing",
			filter:    dto.Filter{Field: "room_type_id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "1 = 0",
			wantArgs:  map[string]any{},
		},
		{
			name:      "less or equal with custom arg name",
			filter:    dto.Filter{Field: "effective_date", ArgName: "on", Value: "2024-12-24", Operator: dto.FilterOperatorLessEq},
			wantWhere: "effective_date <= :on",
			wantArgs:  map[string]any{"on": "2024-12-24"},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "reason", Operator: dto.FilterIsNull},
			wantWhere: "reason IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "hotel_id", Value: "h-1", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "status", Value: "active", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "status", ArgName: "status_alt", Value: "inactive", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(hotel_id = :hotel_id AND (status = :status OR status = :status_alt))", where)
	assert.Equal(t, map[string]any{"hotel_id": "h-1", "status": "active", "status_alt": "inactive"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
