package entity

// UserRef is a lightweight reference to a directory user, used for reminder
// recipients and vehicle assignments. ID is the numeric directory id;
// ExternalID is the opaque store identifier. Either may be missing on records
// coming back from the store, which is why the synchronization layer
// reconciles them against the loaded directory.
type UserRef struct {
	ID          int64  `json:"id,omitempty"`
	ExternalID  string `json:"external_id,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}
