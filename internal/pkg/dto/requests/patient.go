package requests

type CreatePatient struct {
	Family    string   `json:"family" label:"family name" validate:"required,notblank"`
	Given     string   `json:"given" label:"given name" validate:"required,notblank"`
	BirthDate string   `json:"birthDate" label:"birth date" validate:"required,date_only"`
	Email     string   `json:"email" label:"email" validate:"omitempty,email"`
	Phone     string   `json:"phone" label:"phone"`
	Address   *Address `json:"address"`
}

type Address struct {
	Line       []string `json:"line"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	PostalCode string   `json:"postalCode"`
	Country    string   `json:"country"`
}

// UpdatePatient carries a partial update. A nil field keeps the stored
// value; an empty string clears an optional field.
type UpdatePatient struct {
	Family    *string       `json:"family"`
	Given     *string       `json:"given"`
	BirthDate *string       `json:"birthDate" label:"birth date" validate:"omitempty,date_only"`
	Email     *string       `json:"email" label:"email" validate:"omitempty,clearable_email"`
	Phone     *string       `json:"phone"`
	Address   *AddressPatch `json:"address"`
}

type AddressPatch struct {
	Line       []string `json:"line"`
	City       *string  `json:"city"`
	State      *string  `json:"state"`
	PostalCode *string  `json:"postalCode"`
	Country    *string  `json:"country"`
}
