package search

type SelectRequest struct {
	ProviderID int64 `json:"providerId" validate:"required,gt=0"`
}
