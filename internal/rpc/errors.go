package rpc

import (
	"errors"
	"net/http"

	"github.com/daniilsolovey/campus-companion/internal/campus"
	"github.com/vmkteam/zenrpc/v2"
)

var (
	ErrNewsItemNotFound = zenrpc.NewStringError(http.StatusNotFound, "news item not found")
	ErrTeacherNotFound  = zenrpc.NewStringError(http.StatusNotFound, "teacher not found")
	ErrLinkNotFound     = zenrpc.NewStringError(http.StatusNotFound, "quick link not found")
	ErrBuildingNotFound = zenrpc.NewStringError(http.StatusNotFound, "building not found")
	ErrInternal         = zenrpc.NewStringError(http.StatusInternalServerError, "internal error")
)

// newError converts a manager error into a zenrpc error. Storage details are
// logged by the manager and not exposed to clients.
func newError(err error) error {
	var ve *campus.ValidationError
	if errors.As(err, &ve) {
		return zenrpc.NewStringError(http.StatusBadRequest, ve.Error())
	}
	return ErrInternal
}
