package types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type FavoriteRequest struct {
	IsFavorite *bool `json:"is_favorite"`
}

type InquiryStatusRequest struct {
	Status string `json:"status"`
}
