package jamf

import "fmt"

var statusMessages = map[int]string{
	400: "Error 400: Bad request. Verify the syntax of the request, specifically the request body.",
	401: "Error 401: Authentication failed. Verify the credentials being used for the request.",
	403: "Error 403: Invalid permissions. Verify the account being used has the proper permissions for the resource you are trying to access.",
	404: "Error 404: Resource not found. Verify the URL path is correct.",
	409: "Error 409: The request could not be completed due to a conflict with the current state of the resource.",
	414: "Error 414: Request-URI too long.",
	500: "Error 500: Internal server error. Retry the request or contact support if the error persists.",
	503: "Error 503: Service unavailable.",
}

// StatusMessage returns the human readable diagnostic for a Jamf API status code.
func StatusMessage(code int) string {
	if msg, ok := statusMessages[code]; ok {
		return msg
	}

	return fmt.Sprintf("Unexpected error with status code %d", code)
}
