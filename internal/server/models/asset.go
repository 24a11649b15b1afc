// Package models contains the server-side data structures of the asset
// registry and the content validation rules applied on every write.
package models

// Content field bounds. All lengths are byte lengths, not rune counts.
const (
	AssetNameMaxLen        = 64
	AssetDescriptionMaxLen = 128
	AssetTagMaxLen         = 32
	AssetTagsMaxCount      = 10
	AssetSizeBytesMax      = 1_000_000_000 // exclusive
)

// Asset is a metadata record describing a digital resource. The record is
// keyed by a dense sequential ID that is never reused; Owner changes only
// through an explicit transfer and CreatedAt is immutable after creation.
type Asset struct {
	ID          int64
	Name        string
	Owner       string
	SizeBytes   int64
	CreatedAt   int64 // registry sequence number at creation time
	Description string
	Tags        []string
}

// AccessGrant is an explicit read-permission entry for one (asset,
// principal) pair. A missing row is equivalent to ReadEnabled=false.
type AccessGrant struct {
	AssetID     int64
	Principal   string
	ReadEnabled bool
}

// AccessStatus is the result of an access-status query for one principal.
type AccessStatus struct {
	HasGrantedAccess bool
	IsAssetOwner     bool
	CanReadAsset     bool
}

// RegistryState is the singleton counter row. LastAssetID counts
// cumulative successful creations and never decreases.
type RegistryState struct {
	LastAssetID   int64
	Administrator string
}

// RegistryStatistics is the introspection view of the registry state.
type RegistryStatistics struct {
	TotalAssetsRegistered int64
	SystemAdministrator   string
}
