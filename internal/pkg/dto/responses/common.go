package responses

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Total   int  `json:"total"`
	Page    int  `json:"page"`
	Count   int  `json:"count"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type Reference struct {
	Reference string `json:"reference"`
	Display   string `json:"display,omitempty"`
}

type Health struct {
	Status string `json:"status"`
}
