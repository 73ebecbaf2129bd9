package rpc

import (
	"context"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// NewsService provides RPC methods for news items.
type NewsService struct {
	zenrpc.Service
	manager *campus.Manager
}

func NewNewsService(manager *campus.Manager) *NewsService {
	return &NewsService{manager: manager}
}

// List returns all news items sorted by publishedAt DESC.
//
//zenrpc:return list of news items
//zenrpc:500 internal error
func (s *NewsService) List(ctx context.Context) ([]campus.NewsItem, error) {
	list, err := s.manager.NewsItems(ctx)
	if err != nil {
		return nil, newError(err)
	}
	return list, nil
}

// ByID returns a single news item.
//
//zenrpc:id news item ID
//zenrpc:return news item
//zenrpc:404 news item not found
//zenrpc:500 internal error
func (s *NewsService) ByID(ctx context.Context, id int) (*campus.NewsItem, error) {
	item, err := s.manager.NewsItem(ctx, id)
	if err != nil {
		return nil, newError(err)
	}
	if item == nil {
		return nil, ErrNewsItemNotFound
	}
	return item, nil
}

// Create stores a news item. isImportant defaults to false.
//
//zenrpc:item news item without id
//zenrpc:return stored news item
//zenrpc:400 invalid news item
//zenrpc:500 internal error
func (s *NewsService) Create(ctx context.Context, item campus.NewNewsItem) (*campus.NewsItem, error) {
	created, err := s.manager.CreateNewsItem(ctx, item)
	if err != nil {
		return nil, newError(err)
	}
	return created, nil
}
