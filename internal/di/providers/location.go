package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/brightsideapp/brightside-server/internal/config"
	"github.com/brightsideapp/brightside-server/internal/location"
	"github.com/brightsideapp/brightside-server/internal/logger"
	"github.com/brightsideapp/brightside-server/internal/places/geoapify"
	"github.com/brightsideapp/brightside-server/internal/places/osm"
)

// ProvideLocationService provides the location context service and kicks off
// the first resolution in the background.
func ProvideLocationService(i do.Injector) (*location.Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	geoapifyClient := do.MustInvoke[*geoapify.Client](i)
	osmClient := do.MustInvoke[*osm.Client](i)

	svc := location.NewService(location.Options{
		Geoapify:     geoapifyClient,
		OSM:          osmClient,
		Store:        storeHandle.Store,
		IPLookupURL:  cfg.Location.IPLookupURL,
		RadiusMeters: cfg.Location.DefaultRadiusMeters,
		Logger:       log.Logger,
	})

	go func() {
		snap := svc.Resolve(context.Background())
		log.Info("Location resolved",
			"state", snap.State,
			"source", snap.Source,
			"label", snap.Label,
		)
	}()

	return svc, nil
}
