package rpc

import (
	"context"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/vmkteam/zenrpc/v2"
)

// BuildingsService provides RPC methods for campus buildings.
type BuildingsService struct {
	zenrpc.Service
	manager *campus.Manager
}

func NewBuildingsService(manager *campus.Manager) *BuildingsService {
	return &BuildingsService{manager: manager}
}

// List returns all campus buildings in creation order.
//
//zenrpc:return list of buildings
//zenrpc:500 internal error
func (s *BuildingsService) List(ctx context.Context) ([]campus.CampusBuilding, error) {
	list, err := s.manager.CampusBuildings(ctx)
	if err != nil {
		return nil, newError(err)
	}
	return list, nil
}

// ByID returns a single campus building.
//
//zenrpc:id building ID
//zenrpc:return building
//zenrpc:404 building not found
//zenrpc:500 internal error
func (s *BuildingsService) ByID(ctx context.Context, id int) (*campus.CampusBuilding, error) {
	building, err := s.manager.CampusBuilding(ctx, id)
	if err != nil {
		return nil, newError(err)
	}
	if building == nil {
		return nil, ErrBuildingNotFound
	}
	return building, nil
}

// Create stores a campus building.
//
//zenrpc:building building without id
//zenrpc:return stored building
//zenrpc:400 invalid building
//zenrpc:500 internal error
func (s *BuildingsService) Create(ctx context.Context, building campus.NewCampusBuilding) (*campus.CampusBuilding, error) {
	created, err := s.manager.CreateCampusBuilding(ctx, building)
	if err != nil {
		return nil, newError(err)
	}
	return created, nil
}
