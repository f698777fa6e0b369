// Package constants holds cross-layer constant values.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"

	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Pub/Sub publisher.
	PubSubProviderGoogle = "google"

	// ModuleFleet is the owning module name under which reminders relate to
	// fleet vehicles. Recipient aggregation only applies to this module.
	ModuleFleet = "fleet"
)

// MaintenanceTitleMarkers are the title fragments that mark a reminder as the
// vehicle's maintenance reminder. Matching is case-insensitive. The French
// marker is kept because legacy records were titled that way.
var MaintenanceTitleMarkers = []string{"maintenance", "entretien"}
