package global

const (
	AppVersion = "1.0.0" // shown in the root banner and boot logs

	// Gin context key under which the auth middleware stores the
	// resolved *models.User. A string constant avoids typos/collisions.
	CtxUserKey = "current_user"

	// DefaultAuthCookie is the cookie that carries the access token
	// unless config overrides it.
	DefaultAuthCookie = "access_token"
)
