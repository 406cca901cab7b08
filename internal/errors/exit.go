package errors

// Exit codes reported by the repkg binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates repository configuration validation failed.
	ExitValidationError = 2

	// ExitNotFound indicates a repository, package, or version was not found.
	ExitNotFound = 3

	// ExitCollaboratorError indicates an external tool (pandoc, git) failed.
	ExitCollaboratorError = 4
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitCollaboratorError:
		return "External Tool Error"
	default:
		return "Unknown"
	}
}
