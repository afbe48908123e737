package domain

type Flight struct {
	ID          int64   `json:"id"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
}
