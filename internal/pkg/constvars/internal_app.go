package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ACTOR_ID_KEY             ContextKey = "actor_id"
	CONTEXT_ACTOR_ROLES_KEY          ContextKey = "actor_roles"
	CONTEXT_ACTOR_CENTER_KEY         ContextKey = "actor_center_id"
)

const (
	ResourcePlanner      = "planner"
	ResourceSchemas      = "schemas"
	ResourcePhysicians   = "physicians"
	ResourceRooms        = "rooms"
	ResourceAvailability = "availability"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	RoleClinicAdmin = "Clinic Admin"
	RolePhysician   = "Physician"
	RoleReception   = "Reception"
)

const (
	// MongoDB collections
	CollectionSchemas      = "schemas"
	CollectionAvailability = "availability"
	CollectionRooms        = "rooms"
)

const (
	// Redis key prefixes
	RedisKeySchemaCommitLock = "lock:schema-commit:%s" // roomID
)
