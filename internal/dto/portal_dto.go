package dto

type HistoryActionResponse struct {
	Path    string `json:"path"`
	Replace bool   `json:"replace"`
}

type PortalViewResponse struct {
	Page     string                 `json:"page"`
	Redirect *HistoryActionResponse `json:"redirect,omitempty"`
}

type PortalStateResponse struct {
	State  string `json:"state"`
	Page   string `json:"page,omitempty"`
	UserId string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}

type NavigateRequest struct {
	Page string `json:"page" validate:"required,oneof=landing login signup"`
}

type SignupPrefillResponse struct {
	ContactId string `json:"contact_id"`
}
