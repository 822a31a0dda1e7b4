package adminsdk

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Record not found."`
}

// SuccessResponse is returned by delete endpoints.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ============================================================================
// Auth Types
// ============================================================================

type LoginRequest struct {
	Email    string `json:"email" example:"ops@example.com"`
	Password string `json:"password" example:"secret"`
}

type User struct {
	Name  string `json:"name" example:"Sana Malik"`
	Email string `json:"email" example:"ops@example.com"`
	Role  string `json:"role" example:"Super Admin"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// TokenUser is the decoded session token as reported by /api/auth/me.
type TokenUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
}

type MeResponse struct {
	User TokenUser `json:"user"`
}

// ============================================================================
// Dashboard
// ============================================================================

// Dashboard is the overview aggregate. Series entries are free-form.
type Dashboard struct {
	KPIs           []map[string]any `json:"kpis"`
	Revenue        []map[string]any `json:"revenue"`
	Streams        []map[string]any `json:"streams"`
	Funnel         []map[string]any `json:"funnel"`
	SalesBreakdown []map[string]any `json:"salesBreakdown"`

	// Notifications is a count or a list of strings/objects.
	Notifications any `json:"notifications" swaggertype:"object"`

	Profile Profile `json:"profile"`
}

type Profile struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// ============================================================================
// Health
// ============================================================================

// StatusResponse is the body of /api/health.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
