package responses

type Patient struct {
	ID        string   `json:"id"`
	Family    string   `json:"family"`
	Given     string   `json:"given"`
	BirthDate string   `json:"birthDate"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Address   *Address `json:"address,omitempty"`
}

type Address struct {
	Line       []string `json:"line,omitempty"`
	City       string   `json:"city,omitempty"`
	State      string   `json:"state,omitempty"`
	PostalCode string   `json:"postalCode,omitempty"`
	Country    string   `json:"country,omitempty"`
}

// PatientPage is one page of the patient directory.
type PatientPage struct {
	Data       []Patient
	Pagination Pagination
}

type DeletedResource struct {
	ID string `json:"id"`
}
