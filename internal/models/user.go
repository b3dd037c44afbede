package models

import (
	"time"

	"github.com/shenikar/climate_dashboard/internal/query"
)

// User - учетная запись сотрудника дашборда
type User struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	State       string    `json:"state"`
	Status      string    `json:"status"`
	LastLogin   time.Time `json:"last_login"`
	JoinDate    time.Time `json:"join_date"`
	Permissions []string  `json:"permissions"`
}

var UserSchema = query.Schema[User]{
	Dimensions: map[string]query.Accessor[User]{
		"role":       func(u User) string { return u.Role },
		"status":     func(u User) string { return u.Status },
		"department": func(u User) string { return u.Department },
		"state":      func(u User) string { return u.State },
	},
	Searchable: []query.Accessor[User]{
		func(u User) string { return u.Name },
		func(u User) string { return u.Email },
		func(u User) string { return u.State },
	},
	Options: map[string][]string{
		"role":   {query.All, "Administrator", "State Coordinator", "Data Analyst", "Field Coordinator", "Researcher"},
		"status": {query.All, "active", "inactive", "pending"},
	},
}

// RoleCount - число пользователей в роли
type RoleCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountRoles считает распределение по ролям в порядке первого появления
func CountRoles(users []User) []RoleCount {
	index := make(map[string]int)
	counts := make([]RoleCount, 0)
	for _, u := range users {
		i, ok := index[u.Role]
		if !ok {
			i = len(counts)
			index[u.Role] = i
			counts = append(counts, RoleCount{Name: u.Role})
		}
		counts[i].Count++
	}
	return counts
}
