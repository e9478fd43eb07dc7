package constants

const (
	DEFAULT_ITEMS_LIMIT   = 20
	MAX_ITEMS_LIMIT       = 100
	DEFAULT_HISTORY_LIMIT = 30
	MAX_HISTORY_LIMIT     = 365
	DEFAULT_OFFSET        = uint64(0)
	DEFAULT_ITEMS_ORDER   = "title"
)
