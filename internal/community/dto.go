package community

type CreateRequest struct {
	Name string `json:"name"`
}

type SubscribeRequest struct {
	CommunityID string `json:"communityID"`
}

type ShareNoteRequest struct {
	CommunityID string `json:"communityID"`
	NoteSetID   string `json:"noteSetID"`
}

type CommunityDTO struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NumMembers int    `json:"num_members"`
	CreatedAt  string `json:"created_at"`
}
