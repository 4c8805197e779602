package schema

const (
	PathRegister = "/register"
	PathLogin    = "/login"
	PathNotes    = "/notes"
)
