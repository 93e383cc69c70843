package dto

// AddMemberRequest invites a client member to a project
type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role" binding:"omitempty,oneof=client_viewer client_editor"`
}

// UpdateMemberRequest changes a member's name or role
type UpdateMemberRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role" binding:"omitempty,oneof=client_viewer client_editor"`
}

// AddCommentRequest posts a comment on a project or stage
type AddCommentRequest struct {
	StageID *string `json:"stageId"`
	Body    string  `json:"body" binding:"required"`
}

// AddLinkRequest attaches an external URL to a project
type AddLinkRequest struct {
	Title string `json:"title" binding:"required"`
	URL   string `json:"url" binding:"required,url"`
}

// UpdateLinkRequest changes a link's title or URL
type UpdateLinkRequest struct {
	Title *string `json:"title"`
	URL   *string `json:"url" binding:"omitempty,url"`
}

// AddMinuteRequest records meeting notes for one date
type AddMinuteRequest struct {
	MeetingDate string `json:"meetingDate" binding:"required,datetime=2006-01-02"`
	Notes       string `json:"notes" binding:"required"`
}

// UpdateMinuteRequest changes a minute's date or notes
type UpdateMinuteRequest struct {
	MeetingDate *string `json:"meetingDate" binding:"omitempty,datetime=2006-01-02"`
	Notes       *string `json:"notes"`
}

// RequestApprovalRequest opens a sign-off request on a stage
type RequestApprovalRequest struct {
	ComponentID *string `json:"componentId"`
	Note        string  `json:"note"`
}

// RespondApprovalRequest is the client's answer to a sign-off request
type RespondApprovalRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approved changes_requested"`
	Note     string `json:"note"`
}

// CreateClientRequest registers a client organization
type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
}

// UpdateSettingRequest sets one provider setting key
type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}
