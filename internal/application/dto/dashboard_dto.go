package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse resumen del tablero.
type DashboardSummaryResponse struct {
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalOrders int             `json:"totalOrders"`
	Goal        decimal.Decimal `json:"goal"`
	TotalCXC    decimal.Decimal `json:"totalCXC"`
}

// TopProductResponse producto más vendido del rango.
type TopProductResponse struct {
	ProductName string          `json:"productName"`
	TotalQty    decimal.Decimal `json:"totalQty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}
