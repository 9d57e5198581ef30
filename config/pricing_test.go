package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadPricingDefaults(t *testing.T) {
	LoadPricing()

	job, ok := Pricing.PriceFor("job_application")
	assert.True(t, ok)
	assert.Equal(t, 2000.0, job.AmountKES)
	assert.Equal(t, 15.60, job.AmountUSD)

	hire, ok := Pricing.PriceFor("hiring_request")
	assert.True(t, ok)
	assert.Equal(t, 3000.0, hire.AmountKES)
	assert.Equal(t, 23.40, hire.AmountUSD)

	_, ok = Pricing.PriceFor("paypal_topup")
	assert.False(t, ok)
}

func TestLoadPricingEnvOverride(t *testing.T) {
	t.Setenv("JOB_APPLICATION_AMOUNT_KES", "2500")
	t.Setenv("KES_TO_USD_RATE", "0.008")
	LoadPricing()
	defer LoadPricing()

	job, ok := Pricing.PriceFor("job_application")
	assert.True(t, ok)
	assert.Equal(t, 2500.0, job.AmountKES)
	assert.Equal(t, 20.0, job.AmountUSD)
}

func TestAmountUGXRoundsToWholeShillings(t *testing.T) {
	LoadPricing()

	assert.Equal(t, int64(57720), Pricing.AmountUGX(15.60))
	assert.Equal(t, int64(86580), Pricing.AmountUGX(23.40))
	assert.Equal(t, int64(4), Pricing.AmountUGX(0.001))
}
