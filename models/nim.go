package models

// LoginStatus is the reply of /api/login, /api/logout and /api/identity on
// success. Identity is nil when no user is logged in.
type LoginStatus struct {
	Identity *string `json:"identity"`
}

// ErrorResult is the reply the nim server sends together with a non-2xx
// status, e.g. {"error":"LoginFailed"} or
// {"error":"ApiNotDefined","parameter":{"route":"..."}}.
type ErrorResult struct {
	Error     string            `json:"error"`
	Parameter map[string]string `json:"parameter,omitempty"`
}

// Error codes the nim server is known to return in [ErrorResult].
const (
	ErrorCodeLoginFailed     = "LoginFailed"
	ErrorCodeAPINotSpecified = "ApiNotSpecified"
	ErrorCodeAPINotDefined   = "ApiNotDefined"
)

// AsLoginStatus interprets a decoded JSON value as a [LoginStatus].
// It reports false when v is not an object with an "identity" key holding a
// string or null.
func AsLoginStatus(v any) (LoginStatus, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return LoginStatus{}, false
	}

	raw, ok := obj["identity"]
	if !ok {
		return LoginStatus{}, false
	}

	switch identity := raw.(type) {
	case nil:
		return LoginStatus{}, true
	case string:
		return LoginStatus{Identity: &identity}, true
	default:
		return LoginStatus{}, false
	}
}

// AsErrorResult interprets a decoded JSON value as an [ErrorResult].
// Non-string parameter values are skipped.
func AsErrorResult(v any) (ErrorResult, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return ErrorResult{}, false
	}

	code, ok := obj["error"].(string)
	if !ok {
		return ErrorResult{}, false
	}

	result := ErrorResult{Error: code}
	if params, ok := obj["parameter"].(map[string]any); ok {
		result.Parameter = make(map[string]string, len(params))
		for k, p := range params {
			if s, ok := p.(string); ok {
				result.Parameter[k] = s
			}
		}
	}

	return result, true
}

// LoggedIn reports whether the status carries a non-empty identity.
func (s LoginStatus) LoggedIn() bool {
	return s.Identity != nil && *s.Identity != ""
}
