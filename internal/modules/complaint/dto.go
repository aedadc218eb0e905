package complaint

type FileRequest struct {
	ProviderID int64  `json:"providerId" validate:"gte=0"`
	Message    string `json:"message" validate:"required,max=2000"`
}
