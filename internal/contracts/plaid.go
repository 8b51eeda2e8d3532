package contracts

type ExchangeTokenRequest struct {
	PublicToken string `json:"public_token" binding:"required"`
}

type ExchangeTokenResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

type SandboxTokenRequest struct {
	InstitutionID string `json:"institution_id"`
}

type SandboxTokenResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}
