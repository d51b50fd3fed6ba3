package providers

import (
	"github.com/samber/do/v2"

	"github.com/brightsideapp/brightside-server/internal/location"
	"github.com/brightsideapp/brightside-server/internal/logger"
	"github.com/brightsideapp/brightside-server/internal/service"
)

// ProvideDirectoryService provides the business directory service.
func ProvideDirectoryService(i do.Injector) (*service.DirectoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	locationService := do.MustInvoke[*location.Service](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewDirectoryService(storeHandle.Store, locationService, log.Logger), nil
}

// ProvideReviewService provides the review service.
func ProvideReviewService(i do.Injector) (*service.ReviewService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewReviewService(storeHandle.Store, log.Logger), nil
}

// ProvideBookmarkService provides the bookmark service.
func ProvideBookmarkService(i do.Injector) (*service.BookmarkService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewBookmarkService(storeHandle.Store, log.Logger), nil
}

// ProvideDealService provides the deal service.
func ProvideDealService(i do.Injector) (*service.DealService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewDealService(storeHandle.Store, log.Logger), nil
}

// ProvideSessionService provides the user session service.
func ProvideSessionService(i do.Injector) (*service.SessionService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewSessionService(storeHandle.Store, log.Logger), nil
}

// ProvideReportService provides the report service.
func ProvideReportService(i do.Injector) (*service.ReportService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewReportService(storeHandle.Store, log.Logger), nil
}
