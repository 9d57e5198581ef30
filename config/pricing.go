package config

import (
	"math"
	"os"
	"strconv"
)

// PriceEntry is the checkout price for one payment type. KES is canonical;
// USD and UGX are display-only conversions at fixed configured rates.
type PriceEntry struct {
	AmountKES float64
	AmountUSD float64
}

type PricingTable struct {
	KESToUSD float64
	USDToUGX float64
	Prices   map[string]PriceEntry
}

var Pricing PricingTable

func LoadPricing() {
	kesToUSD := getEnvFloat("KES_TO_USD_RATE", 0.0078)
	usdToUGX := getEnvFloat("USD_TO_UGX_RATE", 3700)

	jobSeekerKES := getEnvFloat("JOB_APPLICATION_AMOUNT_KES", 2000)
	employerKES := getEnvFloat("HIRING_REQUEST_AMOUNT_KES", 3000)

	Pricing = PricingTable{
		KESToUSD: kesToUSD,
		USDToUGX: usdToUGX,
		Prices: map[string]PriceEntry{
			"job_application": {
				AmountKES: jobSeekerKES,
				AmountUSD: roundCents(jobSeekerKES * kesToUSD),
			},
			"hiring_request": {
				AmountKES: employerKES,
				AmountUSD: roundCents(employerKES * kesToUSD),
			},
		},
	}
}

// PriceFor returns the configured price for a payment type.
func (t PricingTable) PriceFor(paymentType string) (PriceEntry, bool) {
	entry, ok := t.Prices[paymentType]
	return entry, ok
}

// AmountUGX converts a USD display amount to the Uganda shilling figure shown
// on the payment screens, rounded to the nearest whole shilling.
func (t PricingTable) AmountUGX(amountUSD float64) int64 {
	return int64(math.Round(amountUSD * t.USDToUGX))
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
