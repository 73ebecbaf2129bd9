package rpc

import (
	"context"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/vmkteam/zenrpc/v2"
)

// TeachersService provides RPC methods for the teacher directory.
type TeachersService struct {
	zenrpc.Service
	manager *campus.Manager
}

func NewTeachersService(manager *campus.Manager) *TeachersService {
	return &TeachersService{manager: manager}
}

// List returns teachers sorted by name, or the matches of filter.
// A non-empty search wins over department.
//
//zenrpc:filter optional search or department filter
//zenrpc:return list of teachers
//zenrpc:500 internal error
func (s *TeachersService) List(ctx context.Context, filter *TeacherFilter) ([]campus.Teacher, error) {
	var f campus.TeacherFilter
	if filter != nil {
		f = filter.ToModel()
	}

	list, err := s.manager.Teachers(ctx, f)
	if err != nil {
		return nil, newError(err)
	}
	return list, nil
}

// ByID returns a single teacher.
//
//zenrpc:id teacher ID
//zenrpc:return teacher
//zenrpc:404 teacher not found
//zenrpc:500 internal error
func (s *TeachersService) ByID(ctx context.Context, id int) (*campus.Teacher, error) {
	teacher, err := s.manager.Teacher(ctx, id)
	if err != nil {
		return nil, newError(err)
	}
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}
	return teacher, nil
}

// Create stores a teacher.
//
//zenrpc:teacher teacher without id
//zenrpc:return stored teacher
//zenrpc:400 invalid teacher
//zenrpc:500 internal error
func (s *TeachersService) Create(ctx context.Context, teacher campus.NewTeacher) (*campus.Teacher, error) {
	created, err := s.manager.CreateTeacher(ctx, teacher)
	if err != nil {
		return nil, newError(err)
	}
	return created, nil
}
