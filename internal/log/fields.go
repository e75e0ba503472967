package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldSlot        = "slot"
	FieldBackend     = "backend"
	FieldGoalID      = "goal_id"
	FieldGoalName    = "goal_name"
	FieldGoalCount   = "goal_count"
	FieldAmountCents = "amount_cents"
	FieldTargetCents = "target_cents"
	FieldSavedCents  = "saved_cents"
	FieldCurrency    = "currency"
	FieldTheme       = "theme"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentGoals   = "goals"
	ComponentPrefs   = "prefs"
	ComponentStorage = "storage"
	ComponentTracker = "tracker"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpCreate     = "create"
	OpDelete     = "delete"
	OpAddSavings = "add_savings"
	OpEditTarget = "edit_target"
	OpList       = "list"
	OpLoad       = "load"
	OpPersist    = "persist"
	OpReset      = "reset"
	OpToggle     = "toggle"
)
