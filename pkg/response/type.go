package response

// DefaultErrorMessage is returned when an unexpected error reaches the handler.
const DefaultErrorMessage = "Internal server error"

// ErrResp is the standard error body: { "error": ..., "details": ... }.
type ErrResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func newErrResp(message, details string) ErrResp {
	return ErrResp{Error: message, Details: details}
}
