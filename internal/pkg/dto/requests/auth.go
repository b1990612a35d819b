package requests

type Login struct {
	Email    string `json:"email" label:"email" validate:"required,email"`
	Password string `json:"password" label:"password" validate:"required"`
}

type Signup struct {
	Email       string `json:"email" label:"email" validate:"required,email"`
	Password    string `json:"password" label:"password" validate:"required,min=8"`
	APIKey      string `json:"apiKey"`
	AccessToken string `json:"accessToken"`
}
