package dto

type WorkTypeRequestData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ActivityTypeRequestData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ActionResponse is the JSON shape of a CRUD action outcome.
type ActionResponse struct {
	Result   string   `json:"result"`
	Errors   []string `json:"errors,omitempty"`
	StoredID uint     `json:"storedId,omitempty"`
	Entity   any      `json:"entity,omitempty"`
}
