package response

const (
	MessageSuccess          = "Success"
	MessageValidationFailed = "Validation failed"
	DefaultErrorMessage     = "Something went wrong"

	InternalServerErrorCode = 500
	ValidationErrorCode     = 422
)
