// Package constants holds configuration values shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Change-feed transport providers selected by pubsub.provider.
const (
	PubSubProviderNone   = "none"
	PubSubProviderMemory = "memory"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNATS   = "nats"
)

// Upload prefixes inside the storage bucket.
const (
	StoragePrefixAvatars = "avatars"
	StoragePrefixLogos   = "logos"
)

// VendorTopicPrefix prefixes the push-notification topic of a vendor.
const VendorTopicPrefix = "vendor-"
