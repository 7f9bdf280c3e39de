package pkg

// AppError is the HTTP-facing error envelope shared by all handlers.
//
// Code is a stable machine-readable identifier; Message is safe to show to
// end users. Err keeps the internal cause for logging and is never serialized.

type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Code + ": " + e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// NewDomainError builds an AppError wrapping an internal cause.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError with no internal cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// HTTPError is the response body shape for failures.
type HTTPError struct {
	Error HTTPErrorBody `json:"error"`
}

type HTTPErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ToHTTPError converts the AppError into the serializable envelope.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: HTTPErrorBody{Code: e.Code, Message: e.Message}}
}
