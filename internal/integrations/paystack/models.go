package paystack

import "encoding/json"

// InitializeRequest тело POST /transaction/initialize; Amount в минимальных единицах (kobo, cents)
type InitializeRequest struct {
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference,omitempty"`
}

// Authorization данные для перехода на страницу оплаты
type Authorization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// envelope общий формат ответов провайдера
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}
