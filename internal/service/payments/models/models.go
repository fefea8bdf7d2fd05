package models

import "github.com/shopspring/decimal"

// InitializeRequest запрос на создание платежа; сумма в основных единицах валюты
type InitializeRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Email  string          `json:"email"`
}

// InitializeResponse данные для перехода на страницу оплаты
type InitializeResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}
