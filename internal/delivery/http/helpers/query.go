package helpers

import "net/http"

// RequireQuery returns the decoded query parameter key. If the parameter is absent
// it writes a 400 JSON error and returns false; callers should return immediately.
// A present but empty value is returned as is.
func RequireQuery(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	q := r.URL.Query()
	if !q.Has(key) {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, key+" is required")
		return "", false
	}
	return q.Get(key), true
}
