package status

const (
	OK                    = "OK"
	CREATED               = "CREATED"
	BAD_REQUEST           = "BAD_REQUEST"
	UNAUTHORIZED          = "UNAUTHORIZED"
	FORBIDDEN             = "FORBIDDEN"
	NOT_FOUND             = "NOT_FOUND"
	UNPROCESSABLE_ENTITY  = "UNPROCESSABLE_ENTITY"
	INTERNAL_SERVER_ERROR = "INTERNAL_SERVER_ERROR"
)

// Domain statuses for the booking flow.
const (
	INVALID_HOURS            = "INVALID_HOURS"
	INVALID_PERIOD           = "INVALID_PERIOD"
	NO_SELECTION             = "NO_SELECTION"
	PERIOD_NOT_FOUND         = "PERIOD_NOT_FOUND"
	CLIENT_NOT_FOUND         = "CLIENT_NOT_FOUND"
	REGISTRATION_FAILED      = "REGISTRATION_FAILED"
	RATE_RESOLUTION_DEGRADED = "RATE_RESOLUTION_DEGRADED"
)
