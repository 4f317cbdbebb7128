package response

// Business codes mirror HTTP semantics directly.
const (
	CodeOK               = 0
	CodeBadRequest       = 400
	CodeUnauthorized     = 401
	CodeForbidden        = 403
	CodeNotFound         = 404
	CodeMethodNotAllowed = 405
	CodeServerError      = 500
)

// CodeMsgMap keeps code -> default message in one place.
var CodeMsgMap = map[int]string{
	CodeOK:               "OK",
	CodeBadRequest:       "Bad Request",
	CodeUnauthorized:     "Unauthorized",
	CodeForbidden:        "Forbidden",
	CodeNotFound:         "Not Found",
	CodeMethodNotAllowed: "Method Not Allowed",
	CodeServerError:      "Internal Server Error",
}
