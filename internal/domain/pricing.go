package domain

// PriceTable is the per-category global price list, maintained by admins
// and expressed in the home currency.
type PriceTable struct {
	BaseHome        float64
	BaseForeign     float64
	Theme           float64
	Font            float64
	Music           float64
	Pattern         float64
	Character       float64
	HDDownload      float64
	ExtraSlide      float64
	RemoveWatermark float64
	CustomLink      float64
	MultiImage      float64
}

// Slide carries only the asset references the calculator inspects.
type Slide struct {
	FontID      string
	PatternID   string
	CharacterID string
	PhotoCount  int
}

// Draft is the untrusted client description of a card under checkout.
type Draft struct {
	Slides          []Slide
	MusicID         string
	RemoveWatermark bool
	HDDownload      bool
	CustomSlug      bool
}

// AssetCatalog answers whether a referenced asset is premium-priced.
// Unknown IDs are never premium.
type AssetCatalog interface {
	IsPremiumMusic(id string) bool
	IsPremiumFont(id string) bool
	IsPremiumPattern(id string) bool
	IsPremiumCharacter(id string) bool
}

type QuoteItem struct {
	Label   string
	Price   float64
	Display string
}

type Quote struct {
	Total    float64
	Currency string
	Items    []QuoteItem
}
