package models

// Airport is a static, immutable-for-process-lifetime reference record.
// Defined in models (rather than geo) so both internal/geo and
// internal/timezone can depend on it without an import cycle.
type Airport struct {
	Code     string
	Name     string
	City     string
	Country  string
	Lat      float64
	Lon      float64
	Timezone string
}
