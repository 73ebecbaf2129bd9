package rpc

import (
	"context"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/vmkteam/zenrpc/v2"
)

// LinksService provides RPC methods for quick links.
type LinksService struct {
	zenrpc.Service
	manager *campus.Manager
}

func NewLinksService(manager *campus.Manager) *LinksService {
	return &LinksService{manager: manager}
}

// List returns all quick links in creation order.
//
//zenrpc:return list of quick links
//zenrpc:500 internal error
func (s *LinksService) List(ctx context.Context) ([]campus.QuickLink, error) {
	list, err := s.manager.QuickLinks(ctx)
	if err != nil {
		return nil, newError(err)
	}
	return list, nil
}

// ByID returns a single quick link.
//
//zenrpc:id quick link ID
//zenrpc:return quick link
//zenrpc:404 quick link not found
//zenrpc:500 internal error
func (s *LinksService) ByID(ctx context.Context, id int) (*campus.QuickLink, error) {
	link, err := s.manager.QuickLink(ctx, id)
	if err != nil {
		return nil, newError(err)
	}
	if link == nil {
		return nil, ErrLinkNotFound
	}
	return link, nil
}

// Create stores a quick link. isExternal defaults to true.
//
//zenrpc:link quick link without id
//zenrpc:return stored quick link
//zenrpc:400 invalid quick link
//zenrpc:500 internal error
func (s *LinksService) Create(ctx context.Context, link campus.NewQuickLink) (*campus.QuickLink, error) {
	created, err := s.manager.CreateQuickLink(ctx, link)
	if err != nil {
		return nil, newError(err)
	}
	return created, nil
}
