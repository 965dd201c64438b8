package api

// Deployment targets recognized by BaseURLForTarget. They mirror the
// environments the daybook backend is reachable from during development
// and in production.
const (
	// TargetSimulator is the backend as seen from the developer machine
	// (and the iOS simulator, which shares its network namespace).
	TargetSimulator = "simulator"

	// TargetEmulator is the backend as seen from the Android emulator,
	// which maps the host loopback to 10.0.2.2.
	TargetEmulator = "emulator"

	// TargetProduction is the hosted backend.
	TargetProduction = "production"

	// DefaultTarget is used when no target is configured.
	DefaultTarget = TargetSimulator
)

// defaultBaseURL is the fallback origin for unrecognized targets.
const defaultBaseURL = "http://localhost:3000"

// BaseURLForTarget resolves a deployment target to the backend origin.
// Unrecognized targets fall back to the local development origin. The
// fixed "/api" prefix is appended per request by the client, not here.
func BaseURLForTarget(target string) string {
	switch target {
	case TargetSimulator:
		return "http://localhost:3000"
	case TargetEmulator:
		return "http://10.0.2.2:3000"
	case TargetProduction:
		return "https://api.daybook.app"
	default:
		return defaultBaseURL
	}
}
