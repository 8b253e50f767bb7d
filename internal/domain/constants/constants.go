package constants

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Reminder fan-out providers.
const (
	PubSubProviderDirect = "direct"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
