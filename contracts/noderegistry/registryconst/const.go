package registryconst

// Declared upper bounds (in bytes) of variable-length node fields. Values
// exceeding them are rejected.
const (
	MaxIDLength         = 100
	MaxNameLength       = 100
	MaxTypeLength       = 100
	MaxConfigLength     = 500
	MaxAddressLength    = 100
	MaxRegionLength     = 100
	MaxLocationLength   = 100
	MaxMetadataLength   = 200
	MaxCheckpointLength = 1000

	// MaxCheckpointNodeIDLength bounds node reference of a standalone checkpoint.
	MaxCheckpointNodeIDLength = 500

	MaxAssetNameLength = 100
	MaxAssetURILength  = 200
)

const (
	// InvalidStatusError is returned on status outside of the enumeration.
	InvalidStatusError = "invalid node status"

	// InvalidIDError is returned on empty node identifier.
	InvalidIDError = "invalid node id"

	// InvalidOwnerError is returned on malformed owner account.
	InvalidOwnerError = "invalid owner"

	// AssetExistsError is returned on repeated asset binding.
	AssetExistsError = "asset already exists"

	// InvalidAssetError is returned when the presented asset does not match
	// the asset bound to the node.
	InvalidAssetError = "invalid asset"

	// NotBoundError is returned when an asset operation targets unbound node.
	NotBoundError = "node has no bound asset"

	// CollectionExistsError is returned on repeated collection initialization.
	CollectionExistsError = "collection is already initialized"

	// CollectionMissingError is returned on asset binding before collection
	// initialization.
	CollectionMissingError = "collection is not initialized"
)
