package query_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shenikar/climate_dashboard/internal/fixtures"
	"github.com/shenikar/climate_dashboard/internal/models"
	"github.com/shenikar/climate_dashboard/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportIDs(reports []models.Report) []string {
	ids := make([]string, len(reports))
	for i, r := range reports {
		ids[i] = r.ID
	}
	return ids
}

func TestFilter_BySeverity(t *testing.T) {
	reports := fixtures.Reports()

	matched := query.Filter(reports, query.Criteria{Filters: map[string]string{"severity": "High"}}, models.ReportSchema)

	assert.Equal(t, []string{"RPT-2024-001", "RPT-2024-003", "RPT-2024-005"}, reportIDs(matched))
}

func TestFilter_SearchByLocation(t *testing.T) {
	reports := fixtures.Reports()

	matched := query.Filter(reports, query.Criteria{Search: "lagos"}, models.ReportSchema)

	require.Len(t, matched, 1)
	assert.Equal(t, "Lagos State, Victoria Island", matched[0].Location)
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	reports := fixtures.Reports()

	lower := query.Filter(reports, query.Criteria{Search: "lagos"}, models.ReportSchema)
	upper := query.Filter(reports, query.Criteria{Search: "LAGOS"}, models.ReportSchema)

	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("search results differ (-lower +upper):\n%s", diff)
	}
}

func TestFilter_SearchMatchesAnySearchableField(t *testing.T) {
	reports := fixtures.Reports()

	byID := query.Filter(reports, query.Criteria{Search: "rpt-2024-004"}, models.ReportSchema)
	byTitle := query.Filter(reports, query.Criteria{Search: "landslide"}, models.ReportSchema)
	byReporter := query.Filter(reports, query.Criteria{Search: "Local Farmer"}, models.ReportSchema)

	assert.Equal(t, []string{"RPT-2024-004"}, reportIDs(byID))
	assert.Equal(t, []string{"RPT-2024-005"}, reportIDs(byTitle))
	assert.Empty(t, byReporter, "reporter is not a searchable field")
}

func TestFilter_CombinesDimensionsWithAnd(t *testing.T) {
	reports := fixtures.Reports()
	criteria := query.Criteria{
		Filters: map[string]string{"severity": "high", "status": "Escalated"},
	}

	matched := query.Filter(reports, criteria, models.ReportSchema)

	assert.Equal(t, []string{"RPT-2024-005"}, reportIDs(matched))
}

func TestFilter_AllSentinelAndEmptyValueAreIgnored(t *testing.T) {
	reports := fixtures.Reports()
	criteria := query.Criteria{
		Filters: map[string]string{"severity": "All", "status": "all", "channel": ""},
	}

	matched := query.Filter(reports, criteria, models.ReportSchema)

	assert.Equal(t, reportIDs(reports), reportIDs(matched))
}

func TestFilter_UnknownDimensionIsIgnored(t *testing.T) {
	reports := fixtures.Reports()

	matched := query.Filter(reports, query.Criteria{Filters: map[string]string{"colour": "red"}}, models.ReportSchema)

	assert.Len(t, matched, len(reports))
}

func TestFilter_DimensionNameIsCaseInsensitive(t *testing.T) {
	reports := fixtures.Reports()

	matched := query.Filter(reports, query.Criteria{Filters: map[string]string{"Channel": "SMS"}}, models.ReportSchema)

	assert.Equal(t, []string{"RPT-2024-002", "RPT-2024-005"}, reportIDs(matched))
}

func TestFilter_AbsentFieldDoesNotMatch(t *testing.T) {
	reports := fixtures.Reports()
	reports[0].Channel = ""

	matched := query.Filter(reports, query.Criteria{Filters: map[string]string{"channel": "voice"}}, models.ReportSchema)

	assert.Equal(t, []string{"RPT-2024-004"}, reportIDs(matched))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	reports := fixtures.Reports()
	before := fixtures.Reports()

	_ = query.Filter(reports, query.Criteria{Filters: map[string]string{"severity": "medium"}}, models.ReportSchema)

	assert.Equal(t, before, reports)
}

func TestFilter_PreservesSourceOrder(t *testing.T) {
	reports := fixtures.Reports()
	position := make(map[string]int, len(reports))
	for i, r := range reports {
		position[r.ID] = i
	}

	for _, criteria := range []query.Criteria{
		{},
		{Search: "state"},
		{Filters: map[string]string{"status": "pending"}},
		{Filters: map[string]string{"channel": "sms"}, Search: "a"},
	} {
		matched := query.Filter(reports, criteria, models.ReportSchema)
		for i := 1; i < len(matched); i++ {
			assert.Less(t, position[matched[i-1].ID], position[matched[i].ID])
		}
	}
}

func TestFilter_StricterCriteriaNeverMatchMore(t *testing.T) {
	reports := fixtures.Reports()
	base := query.Criteria{Search: "state"}
	baseCount := len(query.Filter(reports, base, models.ReportSchema))

	for dimension, options := range models.ReportSchema.Options {
		for _, option := range options {
			stricter := query.Criteria{
				Search:  base.Search,
				Filters: map[string]string{dimension: option},
			}
			count := len(query.Filter(reports, stricter, models.ReportSchema))
			assert.LessOrEqual(t, count, baseCount, "%s=%s", dimension, option)
		}
	}
}

func TestFilter_EmptyRecords(t *testing.T) {
	matched := query.Filter([]models.Report{}, query.Criteria{Search: "lagos"}, models.ReportSchema)

	assert.NotNil(t, matched)
	assert.Empty(t, matched)
}

func TestPaginate_FirstPage(t *testing.T) {
	reports := fixtures.Reports()

	result := query.Paginate(reports, query.PageRequest{Number: 1, Size: 2})

	assert.Equal(t, []string{"RPT-2024-001", "RPT-2024-002"}, reportIDs(result.Items))
	assert.Equal(t, 5, result.TotalMatched)
	assert.Equal(t, 3, result.TotalPages)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	reports := fixtures.Reports()

	result := query.Paginate(reports, query.PageRequest{Number: 3, Size: 2})

	assert.Equal(t, []string{"RPT-2024-005"}, reportIDs(result.Items))
	assert.Equal(t, 3, result.TotalPages)
}

func TestPaginate_BeyondRange(t *testing.T) {
	reports := fixtures.Reports()

	result := query.Paginate(reports, query.PageRequest{Number: 4, Size: 2})

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 5, result.TotalMatched)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, 4, result.Page)
}

func TestPaginate_HugePageNumberIsEmpty(t *testing.T) {
	reports := fixtures.Reports()

	require.NotPanics(t, func() {
		result := query.Paginate(reports, query.PageRequest{Number: 1<<62 + 1, Size: 2})

		assert.NotNil(t, result.Items)
		assert.Empty(t, result.Items)
		assert.Equal(t, 5, result.TotalMatched)
		assert.Equal(t, 3, result.TotalPages)
		from, to := result.ShowingRange()
		assert.Zero(t, from)
		assert.Zero(t, to)
	})

	result := query.Paginate(reports, query.PageRequest{Number: math.MaxInt, Size: math.MaxInt})
	assert.Empty(t, result.Items)
}

func TestPaginate_HugePageSizeKeepsOnePage(t *testing.T) {
	reports := fixtures.Reports()

	result := query.Paginate(reports, query.PageRequest{Number: 1, Size: math.MaxInt})

	assert.Len(t, result.Items, 5)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, math.MaxInt, result.PageSize)
}

func TestPaginate_EmptyRecords(t *testing.T) {
	result := query.Run([]models.Report{}, query.Criteria{Search: "x"}, query.PageRequest{Number: 1, Size: 10}, models.ReportSchema)

	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalMatched)
	assert.Equal(t, 0, result.TotalPages)
}

func TestPaginate_PageBelowOneIsClampedToFirstPage(t *testing.T) {
	reports := fixtures.Reports()

	result := query.Paginate(reports, query.PageRequest{Number: -3, Size: 2})

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, []string{"RPT-2024-001", "RPT-2024-002"}, reportIDs(result.Items))
}

func TestPaginate_NonPositivePageSizeFallsBackToOne(t *testing.T) {
	reports := fixtures.Reports()

	result := query.Paginate(reports, query.PageRequest{Number: 2, Size: 0})

	assert.Equal(t, 1, result.PageSize)
	assert.Equal(t, 5, result.TotalPages)
	assert.Equal(t, []string{"RPT-2024-002"}, reportIDs(result.Items))
}

func TestPaginate_ItemsDoNotAliasInput(t *testing.T) {
	reports := fixtures.Reports()

	result := query.Paginate(reports, query.PageRequest{Number: 1, Size: 2})
	result.Items[0].Title = "changed"

	assert.Equal(t, "Severe Flooding in Victoria Island", reports[0].Title)
}

func TestPaginate_PagesCoverAllMatchedRecords(t *testing.T) {
	reports := fixtures.Reports()

	for size := 1; size <= len(reports)+1; size++ {
		first := query.Paginate(reports, query.PageRequest{Number: 1, Size: size})
		var collected []models.Report
		for page := 1; page <= first.TotalPages; page++ {
			collected = append(collected, query.Paginate(reports, query.PageRequest{Number: page, Size: size}).Items...)
		}
		assert.Equal(t, reportIDs(reports), reportIDs(collected), "page size %d", size)
	}
}

func TestRun_IsIdempotent(t *testing.T) {
	reports := fixtures.Reports()
	criteria := query.Criteria{Filters: map[string]string{"severity": "high"}, Search: "state"}
	page := query.PageRequest{Number: 2, Size: 2}

	first := query.Run(reports, criteria, page, models.ReportSchema)
	second := query.Run(reports, criteria, page, models.ReportSchema)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated run differs (-first +second):\n%s", diff)
	}
}

func TestPageResult_ShowingRange(t *testing.T) {
	reports := fixtures.Reports()

	from, to := query.Paginate(reports, query.PageRequest{Number: 2, Size: 2}).ShowingRange()
	assert.Equal(t, 3, from)
	assert.Equal(t, 4, to)

	from, to = query.Paginate(reports, query.PageRequest{Number: 3, Size: 2}).ShowingRange()
	assert.Equal(t, 5, from)
	assert.Equal(t, 5, to)

	from, to = query.Paginate(reports, query.PageRequest{Number: 9, Size: 2}).ShowingRange()
	assert.Zero(t, from)
	assert.Zero(t, to)
}

func TestSchema_HasDimension(t *testing.T) {
	assert.True(t, models.ReportSchema.HasDimension("Severity"))
	assert.False(t, models.ReportSchema.HasDimension("role"))
	assert.Equal(t, []string{"channel", "severity", "status", "type"}, models.ReportSchema.DimensionNames())
}
