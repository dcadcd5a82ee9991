package usecase

import (
	"fmt"
	"math"
	"strconv"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
)

// FreeSlideLimit is how many slides a card carries before the
// extra-slide charge starts.
const FreeSlideLimit = 7

type PricingUsecase interface {
	Quote(prices domain.PriceTable, draft domain.Draft, currency string) domain.Quote
}

type DefaultPricingUsecase struct {
	HomeCurrency    string
	ForeignCurrency string
	Catalog         domain.AssetCatalog
	Rates           domain.RateSource
}

func NewDefaultPricingUsecase(
	homeCurrency string,
	catalog domain.AssetCatalog,
	rates domain.RateSource) *DefaultPricingUsecase {

	return &DefaultPricingUsecase{
		HomeCurrency:    homeCurrency,
		ForeignCurrency: "USD",
		Catalog:         catalog,
		Rates:           rates,
	}
}

// Quote prices a draft deterministically. Foreign-currency checkouts
// convert and round each line item before summing, so the breakdown
// always adds up to the displayed total exactly.
func (uc *DefaultPricingUsecase) Quote(prices domain.PriceTable, draft domain.Draft, currency string) domain.Quote {
	home := currency == uc.HomeCurrency

	rate := 1.0
	if !home {
		rate = uc.Rates.Rate(uc.ForeignCurrency, currency)
	}

	quote := domain.Quote{Currency: currency}
	addItem := func(label string, price float64) {
		if !home {
			price = roundToHalf(price * rate)
		}
		quote.Items = append(quote.Items, domain.QuoteItem{
			Label:   label,
			Price:   price,
			Display: FormatAmount(currency, price, home),
		})
		quote.Total += price
	}

	if home {
		addItem("Base card", prices.BaseHome)
	} else {
		addItem("Base card", prices.BaseForeign)
	}

	if excess := len(draft.Slides) - FreeSlideLimit; excess > 0 && prices.ExtraSlide > 0 {
		addItem(fmt.Sprintf("Extra slides x%d", excess), prices.ExtraSlide*float64(excess))
	}

	// Auto-detected addons charge once per category no matter how many
	// slides reference the asset.
	if draft.MusicID != "" && uc.Catalog.IsPremiumMusic(draft.MusicID) && prices.Music > 0 {
		addItem("Premium music", prices.Music)
	}
	if uc.anyPremiumFont(draft.Slides) && prices.Font > 0 {
		addItem("Premium font", prices.Font)
	}
	if uc.anyPremiumPattern(draft.Slides) && prices.Pattern > 0 {
		addItem("Premium background", prices.Pattern)
	}
	if uc.anyPremiumCharacter(draft.Slides) && prices.Character > 0 {
		addItem("Premium characters", prices.Character)
	}
	if anyMultiImage(draft.Slides) && prices.MultiImage > 0 {
		addItem("Multiple photos", prices.MultiImage)
	}

	if draft.RemoveWatermark && prices.RemoveWatermark > 0 {
		addItem("Remove watermark", prices.RemoveWatermark)
	}
	if draft.HDDownload && prices.HDDownload > 0 {
		addItem("HD download", prices.HDDownload)
	}
	if draft.CustomSlug && prices.CustomLink > 0 {
		addItem("Custom link", prices.CustomLink)
	}

	return quote
}

func (uc *DefaultPricingUsecase) anyPremiumFont(slides []domain.Slide) bool {
	for _, slide := range slides {
		if slide.FontID != "" && uc.Catalog.IsPremiumFont(slide.FontID) {
			return true
		}
	}
	return false
}

func (uc *DefaultPricingUsecase) anyPremiumPattern(slides []domain.Slide) bool {
	for _, slide := range slides {
		if slide.PatternID != "" && uc.Catalog.IsPremiumPattern(slide.PatternID) {
			return true
		}
	}
	return false
}

func (uc *DefaultPricingUsecase) anyPremiumCharacter(slides []domain.Slide) bool {
	for _, slide := range slides {
		if slide.CharacterID != "" && uc.Catalog.IsPremiumCharacter(slide.CharacterID) {
			return true
		}
	}
	return false
}

func anyMultiImage(slides []domain.Slide) bool {
	for _, slide := range slides {
		if slide.PhotoCount > 1 {
			return true
		}
	}
	return false
}

// roundToHalf rounds to the nearest 0.50.
func roundToHalf(v float64) float64 {
	return math.Round(v*2) / 2
}

var currencySymbols = map[string]string{
	"NGN": "₦",
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
	"CAD": "CA$",
	"GHS": "GH₵",
	"KES": "KSh",
	"ZAR": "R",
}

func symbolFor(currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return currency + " "
}

// FormatAmount renders home-currency values as grouped whole units and
// foreign ones with two decimals, each with the local symbol.
func FormatAmount(currency string, v float64, home bool) string {
	if home {
		return symbolFor(currency) + groupDigits(strconv.FormatInt(int64(math.Round(v)), 10))
	}
	whole, frac, _ := splitDecimal(v)
	return symbolFor(currency) + groupDigits(whole) + "." + frac
}

func splitDecimal(v float64) (string, string, error) {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s[:i], s[i+1:], nil
		}
	}
	return s, "00", nil
}

func groupDigits(s string) string {
	start := 0
	if len(s) > 0 && s[0] == '-' {
		start = 1
	}
	digits := len(s) - start
	if digits <= 3 {
		return s
	}

	var out []byte
	out = append(out, s[:start]...)
	lead := digits % 3
	if lead > 0 {
		out = append(out, s[start:start+lead]...)
	}
	for i := start + lead; i < len(s); i += 3 {
		if len(out) > start {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
