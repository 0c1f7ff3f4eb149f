package employee

import (
	"math"
	"sort"
	"strings"

	"go-employee-api/internal/domain"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
	// maxPage keeps (page-1)*pageSize within int.
	maxPage = math.MaxInt / maxPageSize
)

// Normalize fills paging defaults and clamps the page size.
func (r ListEmployeeRequest) Normalize() ListEmployeeRequest {
	if r.Page < 1 {
		r.Page = defaultPage
	}
	if r.Page > maxPage {
		r.Page = maxPage
	}
	if r.PageSize < 1 {
		r.PageSize = defaultPageSize
	}
	if r.PageSize > maxPageSize {
		r.PageSize = maxPageSize
	}
	r.SortBy = strings.ToLower(strings.TrimSpace(r.SortBy))
	if r.SortDir = strings.ToLower(strings.TrimSpace(r.SortDir)); r.SortDir != "desc" {
		r.SortDir = "asc"
	}
	return r
}

// ApplyListQuery filters, sorts and pages items. It returns the page and the
// number of items that matched the filter.
func ApplyListQuery(items []EmployeeResponse, req ListEmployeeRequest) ([]EmployeeResponse, int64) {
	req = req.Normalize()

	filtered := make([]EmployeeResponse, 0, len(items))
	q := strings.ToLower(strings.TrimSpace(req.Q))
	for _, it := range items {
		if q == "" || matches(it, q) {
			filtered = append(filtered, it)
		}
	}

	if less := lessFunc(req.SortBy); less != nil {
		sort.SliceStable(filtered, func(i, j int) bool {
			if req.SortDir == "desc" {
				return less(filtered[j], filtered[i])
			}
			return less(filtered[i], filtered[j])
		})
	}

	total := int64(len(filtered))
	start := (req.Page - 1) * req.PageSize
	if start >= len(filtered) {
		return []EmployeeResponse{}, total
	}
	end := start + req.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total
}

func matches(it EmployeeResponse, q string) bool {
	return strings.Contains(strings.ToLower(it.FirstName+" "+it.LastName), q) ||
		strings.Contains(strings.ToLower(it.Email), q) ||
		strings.Contains(it.DocumentNumber, q)
}

// roleRank orders by authority; unparseable names sort first.
func roleRank(name string) domain.EmployeeRole {
	r, _ := domain.ParseRoleName(name)
	return r
}

func lessFunc(sortBy string) func(a, b EmployeeResponse) bool {
	switch sortBy {
	case "name":
		return func(a, b EmployeeResponse) bool {
			return strings.ToLower(a.FirstName+" "+a.LastName) < strings.ToLower(b.FirstName+" "+b.LastName)
		}
	case "email":
		return func(a, b EmployeeResponse) bool { return a.Email < b.Email }
	case "role":
		return func(a, b EmployeeResponse) bool { return roleRank(a.Role) < roleRank(b.Role) }
	case "id":
		return func(a, b EmployeeResponse) bool { return a.ID < b.ID }
	default:
		return nil
	}
}
