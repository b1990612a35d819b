package constvars

const (
	RegexEmail    = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexFhirID   = `^[A-Za-z0-9\-.]{1,64}$`
	RegexDateOnly = `^\d{4}-\d{2}-\d{2}$`
)
