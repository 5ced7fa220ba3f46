package constvars

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something wrong with the application"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientTooManyRequests               = "too many requests, please retry later"

	ErrClientMalformedTime      = "time must be HH:MM or HH:MM:SS with valid hours and minutes"
	ErrClientUnknownWeekday     = "unrecognized day of week"
	ErrClientInvalidInterval    = "interval start must be before its end"
	ErrClientInternalOverlap    = "submitted intervals overlap each other"
	ErrClientScheduleNotFound   = "schedule entry not found"
	ErrClientRoomNotFound       = "room not found"
	ErrClientCommitLockBusy     = "another operator is saving schedules for this room, please retry"
	ErrClientConflictsUnconfirmed = "conflicting schedules require explicit confirmation"
)

// Error messages for developers
const (
	ErrDevValidationFailed       = "request validation failed"
	ErrDevCannotParseJSON        = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON      = "failed to marshal value to JSON"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevInvalidRequestPayload  = "invalid request payload"

	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"

	ErrDevDBFailedToFindDocument    = "failed to find document(s) in MongoDB"
	ErrDevDBFailedToInsertDocument  = "failed to insert document into MongoDB"
	ErrDevDBFailedToUpdateDocument  = "failed to update document in MongoDB"
	ErrDevDBFailedToDeleteDocument  = "failed to delete document from MongoDB"
	ErrDevDBFailedToIterateDocuments = "failed to iterate MongoDB cursor"
	ErrDevDBStringNotObjectID       = "string is not a valid MongoDB ObjectID"

	ErrDevRedisSetData        = "failed to set data in Redis"
	ErrDevRedisGetData        = "failed to get data from Redis"
	ErrDevRedisDeleteData     = "failed to delete data from Redis"
	ErrDevRedisSetNX          = "failed to acquire SetNX lock in Redis"

	ErrDevQueuePublish = "failed to publish message to RabbitMQ"
	ErrDevQueueDeclare = "failed to declare RabbitMQ queue"
)
