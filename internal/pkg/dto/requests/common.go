package requests

type PageQuery struct {
	Page  int `validate:"gte=1"`
	Count int `validate:"gte=1,lte=100"`
}
