package constvars

// Client-facing messages. These are the only error strings that leave the
// service; dev messages stay in the logs.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check again"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to access this resource"
	ErrClientInvalidClientCredentials      = "Invalid client credentials"
	ErrClientTokenInvalidOrExpired         = "Your token is invalid or has expired, please request a new one"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
)

// Developer messages attached to CustomError for logging.
const (
	ErrDevValidationFailed         = "Request validation failed"
	ErrDevInvalidInput             = "Invalid input"
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevCannotParseTime          = "Failed to parse timestamp"
	ErrDevEngineValidation         = "Availability engine rejected the input"
	ErrDevAuthTokenMissing         = "Authorization token is missing"
	ErrDevAuthTokenInvalid         = "Authorization token is invalid"
	ErrDevAuthSigningMethod        = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken        = "Failed to generate JWT"
	ErrDevAuthInvalidClient        = "Client id or secret does not match the configured credentials"
	ErrDevAPIKeyInvalid            = "Supplied API key does not match the configured internal key"
	ErrDevRedisSetData             = "Failed to set data to redis"
	ErrDevRedisGetData             = "Failed to get data from redis"
	ErrDevRedisDeleteData          = "Failed to delete data from redis"
	ErrDevRabbitMQPublishMessage   = "Failed to publish message to queue %s"
	ErrDevSearchQueueUnknownKind   = "Search queue message has an unknown kind"
	ErrDevSearchQueueDecodePayload = "Failed to decode search queue payload"

	ResponseUnknown = "unknown"
)
