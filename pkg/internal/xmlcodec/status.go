package xmlcodec

// Embedded status codes the client treats as success. The API reports most
// failures inside the payload with HTTP 200, so transport status alone says
// nothing.
const (
	StatusOK        = "OK"
	StatusNoContent = "NO_CONTENT"
)

// StatusCode extracts the embedded status code from a decoded document.
// It reports ok only when the document's status entry is a mapping with a
// string code; anything else means the document carries no verdict.
func StatusCode(doc Map) (string, bool) {
	status, ok := doc["status"].(Map)
	if !ok {
		return "", false
	}
	code, ok := status["code"].(string)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}

// IsSuccess reports whether code is one of the success statuses.
func IsSuccess(code string) bool {
	return code == StatusOK || code == StatusNoContent
}

// NoContentDocument is the synthetic document substituted for an empty
// response body on a successful HTTP status.
func NoContentDocument() Map {
	return Map{"status": Map{"code": StatusNoContent}}
}
