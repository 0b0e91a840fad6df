package apimodels

type Response struct {
	Status  string `json:"status"`            // fail on errors
	Message string `json:"message,omitempty"` // error text
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

// MessageResponse is the body of operations that only acknowledge success.
type MessageResponse struct {
	Msg string `json:"msg"`
}

func NewMessage(msg string) MessageResponse {
	return MessageResponse{Msg: msg}
}
