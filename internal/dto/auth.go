package dto

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TenantMembershipDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Role string `json:"role"`
}

type AuthResponseDTO struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	Tenants []TenantMembershipDTO `json:"tenants,omitempty"`
	Wallet  *CachedWalletDTO      `json:"wallet,omitempty"`
}

type SwitchTenantRequestDTO struct {
	TenantID   string `json:"tenantId" example:"t2"`
	TenantSlug string `json:"tenantSlug" example:"acme"`
}
