package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Planner messages
	PlanFreeWindowsSuccess = "free weekly windows computed successfully"
	FitCheckSuccess        = "fit check completed"

	// Schema messages
	SchemaValidationClean   = "no conflicts detected"
	SchemaValidationFound   = "conflicts detected"
	SchemaCreatedSuccess    = "weekly schema saved successfully"
	SchemaDeletedSuccess    = "weekly schema deleted successfully"
	SchemaListSuccess       = "weekly schemas fetched successfully"

	// Availability messages
	AvailabilityReplacedSuccess = "weekly availability replaced successfully"
	AvailabilityCheckSuccess    = "availability conflict check completed"
)
