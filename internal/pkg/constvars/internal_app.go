package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY  ContextKey = "request_id"
	CONTEXT_SESSION_KEY_KEY ContextKey = "session_key"
)

const (
	REQUEST_ID_PREFIX = "RGSTR_SVC_"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RedisKeySearchPagePrefix = "registry:search:"
)
