package constants

const (
	MAX_TAGS_PER_REQUEST = 20
	REQUEST_ID_HEADER    = "X-Request-ID"
	SERVICE_NAME         = "ff-flow-nft"
)
