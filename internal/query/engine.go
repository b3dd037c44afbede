package query

import (
	"slices"
	"strings"
)

// All - значение фильтра, которое снимает ограничение по измерению
const All = "All"

// Criteria - набор выбранных фильтров и строка поиска
type Criteria struct {
	Filters map[string]string `json:"filters,omitempty"`
	Search  string            `json:"search,omitempty"`
}

// PageRequest - запрашиваемое окно страницы
type PageRequest struct {
	Number int `json:"page"`
	Size   int `json:"page_size"`
}

// PageResult - срез страницы и метаданные пагинации
type PageResult[T any] struct {
	Items        []T `json:"items"`
	TotalMatched int `json:"total_matched"`
	TotalPages   int `json:"total_pages"`
	Page         int `json:"page"`
	PageSize     int `json:"page_size"`
}

// Accessor возвращает значение поля записи
type Accessor[T any] func(T) string

// Schema описывает, какие поля записи участвуют в фильтрации и поиске
type Schema[T any] struct {
	Dimensions map[string]Accessor[T]
	Searchable []Accessor[T]
	Options    map[string][]string
}

// Filter отбирает записи, удовлетворяющие всем фильтрам и строке поиска.
// Порядок исходной коллекции сохраняется, сама коллекция не изменяется.
func Filter[T any](records []T, criteria Criteria, schema Schema[T]) []T {
	constraints := schema.constraints(criteria.Filters)
	term := strings.ToLower(criteria.Search)

	matched := make([]T, 0, len(records))
	for _, record := range records {
		if !matchesAll(record, constraints) {
			continue
		}
		if term != "" && !schema.matchesSearch(record, term) {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}

// Paginate вырезает страницу из отфильтрованных записей.
// Номер страницы меньше 1 приводится к 1, размер страницы меньше 1 - к 1.
// Страница за пределами диапазона возвращает пустой список без ошибки.
func Paginate[T any](matched []T, page PageRequest) PageResult[T] {
	page = page.Normalize()
	total := len(matched)

	result := PageResult[T]{
		Items:        []T{},
		TotalMatched: total,
		TotalPages:   totalPages(total, page.Size),
		Page:         page.Number,
		PageSize:     page.Size,
	}

	// Сравнение до умножения: (Number-1)*Size может переполнить int
	if page.Number > result.TotalPages {
		return result
	}
	start := (page.Number - 1) * page.Size
	end := start + min(page.Size, total-start)
	result.Items = slices.Clone(matched[start:end])
	return result
}

// totalPages считает ceil(total/size) без переполнения при больших size
func totalPages(total, size int) int {
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return pages
}

// Run последовательно применяет Filter и Paginate
func Run[T any](records []T, criteria Criteria, page PageRequest, schema Schema[T]) PageResult[T] {
	return Paginate(Filter(records, criteria, schema), page)
}

// Normalize приводит номер и размер страницы к допустимым значениям
func (p PageRequest) Normalize() PageRequest {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = 1
	}
	return p
}

// ShowingRange возвращает порядковые номера первой и последней записи страницы
// (нумерация с 1). Для пустой страницы возвращает 0, 0.
func (r PageResult[T]) ShowingRange() (from, to int) {
	if len(r.Items) == 0 {
		return 0, 0
	}
	from = (r.Page-1)*r.PageSize + 1
	return from, from + len(r.Items) - 1
}

type constraint[T any] struct {
	accessor Accessor[T]
	value    string
}

// constraints отбрасывает "All", пустые значения и неизвестные измерения
func (s Schema[T]) constraints(filters map[string]string) []constraint[T] {
	out := make([]constraint[T], 0, len(filters))
	for dimension, value := range filters {
		if IsAll(value) {
			continue
		}
		accessor, ok := s.lookup(dimension)
		if !ok {
			continue
		}
		out = append(out, constraint[T]{accessor: accessor, value: value})
	}
	return out
}

func (s Schema[T]) lookup(dimension string) (Accessor[T], bool) {
	if accessor, ok := s.Dimensions[dimension]; ok {
		return accessor, true
	}
	for name, accessor := range s.Dimensions {
		if strings.EqualFold(name, dimension) {
			return accessor, true
		}
	}
	return nil, false
}

func (s Schema[T]) matchesSearch(record T, term string) bool {
	for _, field := range s.Searchable {
		if strings.Contains(strings.ToLower(field(record)), term) {
			return true
		}
	}
	return false
}

func matchesAll[T any](record T, constraints []constraint[T]) bool {
	for _, c := range constraints {
		value := c.accessor(record)
		if value == "" || !strings.EqualFold(value, c.value) {
			return false
		}
	}
	return true
}

// IsAll сообщает, снимает ли выбранное значение ограничение по измерению
func IsAll(value string) bool {
	return value == "" || strings.EqualFold(value, All)
}

// HasDimension сообщает, известно ли измерение схеме
func (s Schema[T]) HasDimension(dimension string) bool {
	_, ok := s.lookup(dimension)
	return ok
}

// DimensionNames возвращает имена измерений в отсортированном порядке
func (s Schema[T]) DimensionNames() []string {
	names := make([]string, 0, len(s.Dimensions))
	for name := range s.Dimensions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
