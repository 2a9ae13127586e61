package utils

// Result is the envelope every usecase method returns. Error is either nil
// or a *httpError.CommonError describing what went wrong.
type Result struct {
	Data  interface{}
	Error error
}
