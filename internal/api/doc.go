// Package api handles incoming HTTP requests and response formatting. It acts
// as an adapter between browser clients and the StudyService, translating
// query parameters into service requests and service errors into JSON error
// bodies with the matching HTTP status.
//
// Status mapping:
//
//	validation failure      400 Bad Request
//	topic not found         404 Topic Not Found
//	encyclopedia failure    502 Encyclopedia Unavailable
//	AI not configured       500 Server Configuration Error
//	generation failure      500 AI Generation Failed
//	anything else           500 Internal Server Error
//
// Error details returned to clients are redacted with internal/redact.
package api
