package rpc

import "github.com/daniilsolovey/campus-companion/internal/campus"

type TeacherFilter struct {
	//search case-insensitive substring of name, department or specialization
	Search *string `json:"search,omitempty"`
	//department exact department, ignored when search is set
	Department *string `json:"department,omitempty"`
}

func (f TeacherFilter) ToModel() campus.TeacherFilter {
	var filter campus.TeacherFilter
	if f.Search != nil {
		filter.Search = *f.Search
	}
	if f.Department != nil {
		filter.Department = *f.Department
	}
	return filter
}
