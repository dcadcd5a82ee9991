package dto

import "encoding/json"

type SlideRequest struct {
	FontID      string `json:"font_id"`
	PatternID   string `json:"pattern_id"`
	CharacterID string `json:"character_id"`
	PhotoCount  int    `json:"photo_count"`
}

type CheckoutRequest struct {
	Slug            string          `json:"slug"`
	Email           string          `json:"email"`
	Currency        string          `json:"currency"`
	Gateway         string          `json:"gateway"`
	MusicID         string          `json:"music_id"`
	RemoveWatermark bool            `json:"remove_watermark"`
	HDDownload      bool            `json:"hd_download"`
	Slides          []SlideRequest  `json:"slides"`
	Pages           json.RawMessage `json:"pages"`
	// EstimatedTotal is display-only; the server always reprices.
	EstimatedTotal float64 `json:"estimated_total"`
}

type CheckoutResponse struct {
	OrderID          string `json:"order_id"`
	Slug             string `json:"slug"`
	PaymentReference string `json:"payment_reference"`
	Gateway          string `json:"gateway"`
	Total            float64 `json:"total"`
	Currency         string  `json:"currency"`
}

type QuoteItemResponse struct {
	Label   string  `json:"label"`
	Price   float64 `json:"price"`
	Display string  `json:"display"`
}

type QuoteResponse struct {
	Total    float64             `json:"total"`
	Currency string              `json:"currency"`
	Items    []QuoteItemResponse `json:"items"`
}

type OrderStatusResponse struct {
	OrderID       string `json:"order_id"`
	Slug          string `json:"slug"`
	PaymentStatus string `json:"payment_status"`
}
