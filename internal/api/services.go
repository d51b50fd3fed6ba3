package api

import (
	"github.com/brightsideapp/brightside-server/internal/service"
)

// Services groups all business logic services used by the API server.
// This reduces the parameter count for NewServer and improves testability.
type Services struct {
	Directory *service.DirectoryService
	Review    *service.ReviewService
	Bookmark  *service.BookmarkService
	Deal      *service.DealService
	Session   *service.SessionService
	Report    *service.ReportService
	Search    *service.SearchService
}
