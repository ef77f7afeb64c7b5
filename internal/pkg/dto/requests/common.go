package requests

type Pagination struct {
	Page     int `validate:"gte=1"`
	PageSize int `validate:"gte=1,lte=200"`
}
