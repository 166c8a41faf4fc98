package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingClientIDKey   = "client_id"
	LoggingCacheKeyKey   = "cache_key"
	LoggingQueueKey      = "queue"
	LoggingMessageIDKey  = "message_id"
	LoggingKindKey       = "kind"
	LoggingSlotCountKey  = "slot_count"
)
