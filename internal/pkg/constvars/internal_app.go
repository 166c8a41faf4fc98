package constvars

type contextKey string

const (
	ContextRequestIDKey         contextKey = "request_id"
	ContextIsClientRequestIDKey contextKey = "is_client_request_id"
	ContextClientIDKey          contextKey = "client_id"
	ContextAPIKeyAuthKey        contextKey = "api_key_auth"
)

// CustomValidationErrorMessages maps validator tags to client-readable
// fragments; the field name is prepended by the formatter.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gt":       "must be greater than %s",
	"gte":      "must be at least %s",
	"oneof":    "must be one of: %s",
	"datetime": "must match the layout %s",
}

// TagsWithParams marks the tags whose message carries the tag parameter.
var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"gt":       true,
	"gte":      true,
	"oneof":    true,
	"datetime": true,
}
