package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/climate_dashboard/internal/query"
	"github.com/shenikar/climate_dashboard/internal/service"
)

// bindListQuery читает поиск, страницу и фильтры по измерениям из query-параметров.
// Каждое измерение читается из параметра с тем же именем (?status=Pending)
func (h *Handler) bindListQuery(c *gin.Context, dimensions []string) (service.ListQuery, error) {
	var input ListQueryRequest
	if err := c.ShouldBindQuery(&input); err != nil {
		return service.ListQuery{}, err
	}
	if err := h.validate.Struct(input); err != nil {
		return service.ListQuery{}, err
	}

	filters := make(map[string]string, len(dimensions))
	for _, dimension := range dimensions {
		if value := c.Query(dimension); value != "" {
			filters[dimension] = value
		}
	}

	return service.ListQuery{
		Criteria: query.Criteria{
			Filters: filters,
			Search:  input.Search,
		},
		Page: query.PageRequest{
			Number: input.Page,
			Size:   input.PageSize,
		},
	}, nil
}
