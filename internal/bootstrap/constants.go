package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting Valhalla loot service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgBracketsLoaded      = "Bracket configuration loaded"
	LogMsgServicesReady       = "Services initialized"
	LogMsgEnvWarning          = "Environment warning"
	LogMsgEnvInvalid          = "Environment validation failed"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"
	LogMsgServerStopped        = "Server stopped"
)
