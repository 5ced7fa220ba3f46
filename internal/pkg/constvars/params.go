package constvars

const (
	URLParamSchemaID    = "schema_id"
	URLParamPhysicianID = "physician_id"
)

const (
	URLQueryParamPage        = "page"
	URLQueryParamPageSize    = "page_size"
	URLQueryParamRoomID      = "room_id"
	URLQueryParamPhysicianID = "physician_id"
	URLQueryParamCenterID    = "center_id"
)
