package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldTeam       = "team"
	FieldOpponent   = "opponent"
	FieldScore      = "score"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldExpiresAt  = "expires_at"
	FieldFrame      = "frame"
)
