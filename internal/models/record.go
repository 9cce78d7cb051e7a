package models

// Record is one decoded log line. Only "url" and "response_time" are
// interpreted; every other field is carried along untouched.
type Record map[string]any

const (
	FieldURL          = "url"
	FieldResponseTime = "response_time"
)

// Endpoint returns the url field when it is present and a string.
func (r Record) Endpoint() (string, bool) {
	v, ok := r[FieldURL]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ResponseTime returns the response_time field when it is present and numeric.
func (r Record) ResponseTime() (float64, bool) {
	v, ok := r[FieldResponseTime]
	if !ok {
		return 0, false
	}

	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
