package block

import (
	"github.com/google/uuid"

	"go-payture-block/internal/config"
	"go-payture-block/internal/harness"
)

type Card struct {
	PAN        string
	ExpMonth   string
	ExpYear    string
	Holder     string
	SecureCode string
}

// Fixture is the sandbox data every Block check is built from.
type Fixture struct {
	Endpoint    string
	MerchantKey string
	Amount      string
	Card        Card

	// KnownDuplicateOrderID was used in an earlier Block on the gateway.
	// Empty disables the check that depends on it.
	KnownDuplicateOrderID string
}

func FixtureFromConfig(cfg *config.Config) Fixture {
	return Fixture{
		Endpoint:    cfg.GatewayURL,
		MerchantKey: cfg.MerchantKey,
		Amount:      cfg.BlockAmount,
		Card: Card{
			PAN:        cfg.CardPAN,
			ExpMonth:   cfg.CardExpMonth,
			ExpYear:    cfg.CardExpYear,
			Holder:     cfg.CardHolder,
			SecureCode: cfg.CardSecureCode,
		},
		KnownDuplicateOrderID: cfg.DuplicateOrderID,
	}
}

// NewOrderID returns a random UUID, unique for the lifetime of a run.
func NewOrderID() string {
	return uuid.NewString()
}

func (f Fixture) PayInfo(orderID string) PayInfo {
	return NewPayInfo(f.Card, orderID, f.Amount)
}

// Request is a well-formed Block request for orderID.
func (f Fixture) Request(orderID string) harness.RequestSpec {
	return f.RequestWithPayInfo(orderID, f.PayInfo(orderID))
}

func (f Fixture) RequestWithPayInfo(orderID string, payInfo PayInfo) harness.RequestSpec {
	return harness.NewRequest(f.Endpoint).
		With(ParamKey, f.MerchantKey).
		With(ParamAmount, f.Amount).
		With(ParamOrderID, orderID).
		With(ParamPayInfo, payInfo.Encode())
}
