package responses

type AccountInfo struct {
	ID                 string  `json:"id"`
	PatientID          string  `json:"patientId"`
	PatientName        string  `json:"patientName"`
	OutstandingBalance float64 `json:"outstandingBalance"`
	UnusedFunds        float64 `json:"unusedFunds"`
	Status             string  `json:"status"`
	Description        string  `json:"description,omitempty"`
}

type CoverageInfo struct {
	ID           string `json:"id"`
	PatientID    string `json:"patientId"`
	SubscriberID string `json:"subscriberId"`
	Payor        string `json:"payor"`
	Class        string `json:"class"`
	Type         string `json:"type"`
	Status       string `json:"status"`
}
