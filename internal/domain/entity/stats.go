package entity

// ProductStat is the sold quantity and revenue of one product inside a
// category breakdown. TotalAmount uses the product's current price.
type ProductStat struct {
	Name        string  `json:"name"`
	SoldQty     int     `json:"sold_qty"`
	TotalAmount float64 `json:"total_amount"`
}

// CategoryStat is one category's product breakdown. Categories whose
// product list would be empty are dropped from results entirely.
type CategoryStat struct {
	CategoryName string        `json:"category_name"`
	Products     []ProductStat `json:"products"`
}

// DailyPaymentStat holds one calendar date's revenue split by payment
// mode. Date is the local calendar date of the purchase timestamp
// (yyyy-mm-dd), not the business-day bucket.
type DailyPaymentStat struct {
	Date       string  `json:"date"`
	Cash       float64 `json:"cash"`
	Electronic float64 `json:"electronic"`
	Total      float64 `json:"total"`
}
