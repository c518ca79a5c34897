package utils

// LoggerInitializationFailedMessageFormat reports a failure to construct the application logger.
const LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"

// ApplicationExecutionFailedMessage prefixes fatal command line errors.
const ApplicationExecutionFailedMessage = "treeview execution failed"

// GitDirectoryName is the name of the Git repository directory.
const GitDirectoryName = ".git"
