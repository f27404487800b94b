package apps

import "github.com/gofiber/fiber/v2"

// Plugin is a feature area of the counsellor API.
type Plugin interface {
	// ID returns the unique plugin identifier.
	ID() string

	// RegisterRoutes mounts session routes on the given Fiber group.
	// The group is prefixed with /api/p and resolves the caller's session.
	RegisterRoutes(router fiber.Router)
}

// PublicPlugin extends Plugin with routes that need no session.
type PublicPlugin interface {
	Plugin

	// RegisterPublicRoutes mounts routes on the bare /api group.
	RegisterPublicRoutes(router fiber.Router)
}
