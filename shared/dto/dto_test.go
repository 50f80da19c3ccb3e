package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
	"hotel/shared/timezone"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "creator", metadata.CreatedBy)
	assert.Equal(t, "modifier", metadata.ModifiedBy)
}

func TestMetadata_FromModel_OmitsUnsetInstants(t *testing.T) {
	metadata := &dto.Metadata{CreatedAt: "stale"}
	metadata.FromModel(model.Metadata{CreatedBy: "system"})

	assert.Empty(t, metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt)
	assert.Equal(t, "system", metadata.CreatedBy)
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
			query:    "page=2&limit=20&sort_by=room_number&sort_dir=asc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "room_number", SortDir: dto.SortDirAsc},
		},
		{
			name:           "defaults applied",
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:     "no defaults and no parameters",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid page and limit fall back to defaults",
			query:          "page=-1&limit=abc",
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:           "sort column without direction defaults to ascending",
			query:          "sort_by=check_in",
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "check_in",
				SortDir: dto.SortDirAsc,
			},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: constant.MaxValueLimit},
		},
		{
			name:     "unsafe sort column is ignored",
			query:    "sort_by=id;DROP%20TABLE%20rooms",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/rooms?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Offset(t *testing.T) {
	assert.Equal(t, 0, dto.QueryParams{}.Offset())
	assert.Equal(t, 0, dto.QueryParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, dto.QueryParams{Page: 3, Limit: 20}.Offset())
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
			filter:    dto.Filter{Field: "status", Value: "available", Operator: dto.FilterOperatorEq, Table: "rooms"},
			wantWhere: "rooms.status = :status",
			wantArgs:  map[string]any{"status": "available"},
		},
		{
			name:      "strictly less with arg name",
			filter:    dto.Filter{ArgName: "range_to", Field: "check_in", Value: "2024-06-05", Operator: dto.FilterOperatorLess},
			wantWhere: "check_in < :range_to",
			wantArgs:  map[string]any{"range_to": "2024-06-05"},
		},
		{
			name:      "strictly greater",
			filter:    dto.Filter{Field: "check_out", Value: "2024-06-01", Operator: dto.FilterOperatorGreater},
			wantWhere: "check_out > :check_out",
			wantArgs:  map[string]any{"check_out": "2024-06-01"},
		},
		{
			name:      "in expands slice",
			filter:    dto.Filter{Field: "status", Value: []string{"reserved", "confirmed"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1) ",
			wantArgs:  map[string]any{"status_0": "reserved", "status_1": "confirmed"},
		},
		{
			name:      "not in expands slice",
			filter:    dto.Filter{Field: "id", Value: []string{"r1"}, Operator: dto.FilterOperatorNotIn, Table: "rooms"},
			wantWhere: "rooms.id NOT IN (:id_0) ",
			wantArgs:  map[string]any{"id_0": "r1"},
		},
		{
			name:      "empty not in matches everything",
			filter:    dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorNotIn},
			wantWhere: "TRUE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "empty in matches nothing",
			filter:    dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
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

func TestFilterGroup_And(t *testing.T) {
	base := dto.FilterGroup{}
	group := base.And(
		dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq},
		dto.Filter{Field: "status", Value: "reserved", Operator: dto.FilterOperatorEq},
	)

	where, args := group.GetWhereClause()

	assert.Empty(t, base.Filters)
	assert.Equal(t, "(room_id = :room_id AND status = :status)", where)
	assert.Equal(t, map[string]any{"room_id": "r1", "status": "reserved"}, args)
}

func TestSortDirectionConstants(t *testing.T) {
	assert.Equal(t, "ASC", dto.SortDirAsc)
	assert.Equal(t, "DESC", dto.SortDirDesc)
}
