package request

// ClickRequest is the request body for clicking a cell or command
type ClickRequest struct {
	Target string `json:"target"`
}

// KeyRequest is the request body for a key press
type KeyRequest struct {
	Key string `json:"key"`
}
