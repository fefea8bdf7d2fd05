package quote_booking

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RealEstateService/pkg/types"
)

// Request модель запроса предварительного расчета
type Request struct {
	PropertyID int64
	CheckIn    string // YYYY-MM-DD
	CheckOut   string // YYYY-MM-DD
}

// Response расчет стоимости без создания бронирования
type Response struct {
	PropertyID   int64
	CheckIn      types.Date
	CheckOut     types.Date
	Nights       int
	NightlyPrice decimal.Decimal
	TotalPrice   decimal.Decimal
}
