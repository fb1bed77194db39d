// Package pricing turns normalized job-card line items into totals.
//
// Every monetary intermediate is rounded to two places, half away from zero.
// Floats are converted through their shortest decimal representation before
// any arithmetic, so values such as 1.005 round the way they read instead of
// the way they are stored in binary.
package pricing

import (
	"math"

	"github.com/kuntarvishnuprasad41/sparelab-epc/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultTaxPercent applies when a job card is created without a usable tax
// percentage.
const DefaultTaxPercent = 18.0

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Totals is the full price breakdown of one job card.
type Totals struct {
	DiscountPercent float64 `json:"discountPercent"`
	TaxPercent      float64 `json:"taxPercent"`
	ServiceSubtotal float64 `json:"serviceSubtotal"`
	PartsSubtotal   float64 `json:"partsSubtotal"`
	GrossTotal      float64 `json:"grossTotal"`
	DiscountAmount  float64 `json:"discountAmount"`
	TaxableBase     float64 `json:"taxableBase"`
	TaxAmount       float64 `json:"taxAmount"`
	TotalAmount     float64 `json:"totalAmount"`
}

// ApplyTo copies the derived pricing fields onto the job card.
func (t Totals) ApplyTo(card *entities.JobCard) {
	card.DiscountPercent = t.DiscountPercent
	card.TaxPercent = t.TaxPercent
	card.ServiceSubtotal = t.ServiceSubtotal
	card.PartsSubtotal = t.PartsSubtotal
	card.GrossTotal = t.GrossTotal
	card.DiscountAmount = t.DiscountAmount
	card.TaxAmount = t.TaxAmount
	card.TotalAmount = t.TotalAmount
}

// Round rounds v to two decimal places, half away from zero. Non-finite
// input rounds to 0.
func Round(v float64) float64 {
	return toMoney(v).InexactFloat64()
}

// Sum adds the values and rounds the result.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(fromFloat(v))
	}
	return total.Round(moneyPlaces).InexactFloat64()
}

// LineTotal is quantity * unitPrice, rounded.
func LineTotal(quantity int, unitPrice float64) float64 {
	return fromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))).Round(moneyPlaces).InexactFloat64()
}

// ResolveDiscountPercent maps an absent, non-finite or negative discount to 0.
func ResolveDiscountPercent(p *float64) float64 {
	if p == nil || !isFinite(*p) || *p < 0 {
		return 0
	}
	return *p
}

// ResolveTaxPercent maps an absent or non-finite tax to DefaultTaxPercent and
// clamps negative values to 0.
func ResolveTaxPercent(p *float64) float64 {
	if p == nil || !isFinite(*p) {
		return DefaultTaxPercent
	}
	if *p < 0 {
		return 0
	}
	return *p
}

// ComputeTotals prices the line items. It has no side effects and returns
// identical totals for identical input.
func ComputeTotals(services []entities.ServiceLineItem, parts []entities.PartLineItem, discountPercent, taxPercent *float64) Totals {
	dp := ResolveDiscountPercent(discountPercent)
	tp := ResolveTaxPercent(taxPercent)

	serviceSubtotal := decimal.Zero
	for _, s := range services {
		serviceSubtotal = serviceSubtotal.Add(fromFloat(s.Cost))
	}
	serviceSubtotal = serviceSubtotal.Round(moneyPlaces)

	partsSubtotal := decimal.Zero
	for _, p := range parts {
		partsSubtotal = partsSubtotal.Add(fromFloat(p.LineTotal))
	}
	partsSubtotal = partsSubtotal.Round(moneyPlaces)

	gross := serviceSubtotal.Add(partsSubtotal).Round(moneyPlaces)
	discount := percentOf(gross, dp)
	taxableBase := gross.Sub(discount).Round(moneyPlaces)
	tax := percentOf(taxableBase, tp)
	total := taxableBase.Add(tax).Round(moneyPlaces)

	return Totals{
		DiscountPercent: dp,
		TaxPercent:      tp,
		ServiceSubtotal: serviceSubtotal.InexactFloat64(),
		PartsSubtotal:   partsSubtotal.InexactFloat64(),
		GrossTotal:      gross.InexactFloat64(),
		DiscountAmount:  discount.InexactFloat64(),
		TaxableBase:     taxableBase.InexactFloat64(),
		TaxAmount:       tax.InexactFloat64(),
		TotalAmount:     total.InexactFloat64(),
	}
}

func percentOf(base decimal.Decimal, percent float64) decimal.Decimal {
	return base.Mul(fromFloat(percent)).Div(hundred).Round(moneyPlaces)
}

func toMoney(v float64) decimal.Decimal {
	return fromFloat(v).Round(moneyPlaces)
}

// fromFloat guards decimal.NewFromFloat, which panics on NaN and Inf.
func fromFloat(v float64) decimal.Decimal {
	if !isFinite(v) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
