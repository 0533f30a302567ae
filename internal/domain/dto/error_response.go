package dto

// Fixed messages returned to clients. Upstream detail is logged, never echoed.
const (
	MsgStockDataFailed   = "Failed to fetch stock data"
	MsgHistoryFailed     = "Failed to fetch historical data"
	MsgHistoryNotFound   = "No data found"
	MsgInternalError     = "Internal server error"
	MsgRateLimitExceeded = "rate limit exceeded"
)

// ErrorResponse is the JSON body of every non-2xx response.
//
// Only "error" is always present, so a response built with a nil inner error
// serializes to exactly {"error": "<message>"}.
type ErrorResponse struct {
	Message      string `json:"error" example:"Failed to fetch stock data"`
	ErrorDetails string `json:"details,omitempty" example:"unsupported interval \"2m\""`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse; err, when not nil, is exposed as details.
// Pass nil for failures whose cause must stay server side.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
