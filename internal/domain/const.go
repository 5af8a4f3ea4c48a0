package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Collection placeholder used when contractURI is not set
	PENDING_COLLECTION_NAME        = "NFT Collection"
	PENDING_COLLECTION_DESCRIPTION = "Collection metadata not yet set"
	PENDING_COLLECTION_IMAGE       = "https://placehold.co/600x400?text=Pending"
)
