package block

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-payture-block/internal/config"
	"go-payture-block/internal/harness"
)

var testCard = Card{
	PAN:        "4111111111111112",
	ExpMonth:   "12",
	ExpYear:    "22",
	Holder:     "Roman Miller",
	SecureCode: "123",
}

func TestPayInfoString(t *testing.T) {
	p := NewPayInfo(testCard, "order-1", "12345")
	assert.Equal(t,
		"PAN=4111111111111112;EMonth=12;EYear=22;CardHolder=Roman Miller;SecureCode=123;OrderId=order-1;Amount=12345",
		p.String())
	assert.Equal(t,
		"PAN%3D4111111111111112%3BEMonth%3D12%3BEYear%3D22%3BCardHolder%3DRoman+Miller%3BSecureCode%3D123%3BOrderId%3Dorder-1%3BAmount%3D12345",
		p.Encode())
}

func TestPayInfoWithout(t *testing.T) {
	p := NewPayInfo(testCard, "order-1", "12345").Without(FieldEMonth)

	_, ok := p.Get(FieldEMonth)
	assert.False(t, ok)
	assert.Len(t, p.Fields, 6)
	assert.NotContains(t, p.String(), "EMonth")
}

func TestDecodePayInfoRoundTrip(t *testing.T) {
	p := NewPayInfo(testCard, "order-1", "12345").Without(FieldPAN)

	decoded, err := DecodePayInfo(p.Encode())
	require.NoError(t, err)
	assert.Equal(t, p, decoded)

	holder, ok := decoded.Get(FieldCardHolder)
	assert.True(t, ok)
	assert.Equal(t, "Roman Miller", holder)
}

func TestParsePayInfoErrors(t *testing.T) {
	_, err := ParsePayInfo("PAN=1;EMonth")
	assert.Error(t, err)

	_, err = DecodePayInfo("%zz")
	assert.Error(t, err)

	empty, err := ParsePayInfo("")
	require.NoError(t, err)
	assert.Empty(t, empty.Fields)
}

func TestFixtureRequest(t *testing.T) {
	f := FixtureFromConfig(&config.Config{
		GatewayURL:       "https://gateway.test/api/Block",
		MerchantKey:      "Merchant",
		BlockAmount:      "12345",
		CardPAN:          testCard.PAN,
		CardExpMonth:     testCard.ExpMonth,
		CardExpYear:      testCard.ExpYear,
		CardHolder:       testCard.Holder,
		CardSecureCode:   testCard.SecureCode,
		DuplicateOrderID: "dup",
	})
	assert.Equal(t, testCard, f.Card)
	assert.Equal(t, "dup", f.KnownDuplicateOrderID)

	spec := f.Request("order-1")
	names := make([]string, len(spec.Params))
	for i, p := range spec.Params {
		names[i] = p.Name
	}
	assert.Equal(t, []string{ParamKey, ParamAmount, ParamOrderID, ParamPayInfo}, names)

	// The PayInfo value survives both encoding passes.
	params, err := harness.ParseQuery(spec.Query())
	require.NoError(t, err)
	decoded, err := DecodePayInfo(params[3].Value)
	require.NoError(t, err)
	assert.Equal(t, f.PayInfo("order-1"), decoded)
}

func TestNewOrderIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := NewOrderID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate order id %s", id)
		seen[id] = struct{}{}
	}
}

func TestScenarioCatalog(t *testing.T) {
	f := Fixture{Endpoint: "https://gateway.test/api/Block", Amount: "1", KnownDuplicateOrderID: "dup"}

	var names []string
	drifted := map[string]bool{}
	for _, c := range Scenarios(f) {
		names = append(names, c.Name)
		drifted[c.Name] = c.Drift != ""
		assert.NotNil(t, c.Request, c.Name)
		assert.NotEmpty(t, c.Expect, c.Name)
	}

	assert.Equal(t, []string{
		"correct_request",
		"without_key",
		"duplicate_order_id",
		"known_duplicate_order_id",
		"without_order_id",
		"without_amount",
		"without_pay_info",
		"pay_info_without_pan",
		"pay_info_without_emonth",
		"pay_info_without_eyear",
		"correct_request/1",
		"correct_request/2",
		"correct_request/3",
	}, names)
	assert.True(t, drifted["without_key"])
	assert.True(t, drifted["without_pay_info"])
	assert.False(t, drifted["correct_request"])

	// Every documented error code is asserted by some case.
	for _, code := range ErrCodes {
		found := false
		for _, c := range Scenarios(f) {
			for _, e := range c.Expect {
				if strings.Contains(e.Describe(harness.Vars{}), code) {
					found = true
				}
			}
		}
		assert.True(t, found, code)
	}

	f.KnownDuplicateOrderID = ""
	for _, c := range Scenarios(f) {
		assert.NotEqual(t, "known_duplicate_order_id", c.Name)
	}
}
