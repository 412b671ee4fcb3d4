package kv

// The schema will define how to store and retrieve data from the db.
// Blocks are stored by root, sync contribution lists by the decimal string of
// their slot and chain metadata under fixed keys.
var (
	blocksBucket           = []byte("blocks")
	syncContributionBucket = []byte("sync-contributions")
	chainMetadataBucket    = []byte("chain-metadata")

	// Metadata keys.
	headBlockRootKey    = []byte("head-root")
	highestBlockSlotKey = []byte("highest-block-slot")
)
