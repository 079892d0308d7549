package common

const (
	// APIPrefix is the path prefix of every HTTP route.
	APIPrefix = "/api/v1"

	// TokenType is reported alongside issued access tokens.
	TokenType = "bearer"

	// RunStatusPass and RunStatusFail are the only run outcomes.
	RunStatusPass = "pass"
	RunStatusFail = "fail"
)
