package providers

import (
	"github.com/samber/do/v2"

	"github.com/brightsideapp/brightside-server/internal/config"
	"github.com/brightsideapp/brightside-server/internal/logger"
	"github.com/brightsideapp/brightside-server/internal/places/geoapify"
	"github.com/brightsideapp/brightside-server/internal/places/osm"
)

// ProvideGeoapifyClient provides the Geoapify place-data adapter. The client
// exists even without an API key; Configured() gates its use in fallback
// chains.
func ProvideGeoapifyClient(i do.Injector) (*geoapify.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := geoapify.NewClient(geoapify.Options{
		APIKey: cfg.Places.GeoapifyAPIKey,
		Logger: log.Logger,
	})

	if client.Configured() {
		log.Info("Geoapify adapter configured")
	} else {
		log.Info("Geoapify adapter disabled, no API key")
	}

	return client, nil
}

// ProvideOSMClient provides the OpenStreetMap adapter (Overpass + Nominatim).
func ProvideOSMClient(i do.Injector) (*osm.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return osm.NewClient(osm.Options{
		OverpassURL:  cfg.Places.OverpassURL,
		NominatimURL: cfg.Places.NominatimURL,
		Logger:       log.Logger,
	}), nil
}
