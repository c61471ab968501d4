package block

import (
	"net/http"

	"go-payture-block/internal/harness"
)

// VarOrderID names the fresh order id generated for each case.
const VarOrderID = "OrderId"

// RepeatCount is how many times the well-formed request is repeated with
// fresh order ids.
const RepeatCount = 3

func freshOrderID() map[string]harness.Generator {
	return map[string]harness.Generator{VarOrderID: NewOrderID}
}

func succeeded(extra ...harness.Expectation) []harness.Expectation {
	return append([]harness.Expectation{
		harness.StatusEquals(http.StatusOK),
		harness.BodyContains(harness.Literal(ResponseRoot)),
		harness.BodyContains(harness.Attr(AttrSuccess, harness.Literal(SuccessTrue))),
	}, extra...)
}

func failedWith(errCode string, extra ...harness.Expectation) []harness.Expectation {
	expect := []harness.Expectation{
		harness.StatusEquals(http.StatusOK),
		harness.BodyContains(harness.Literal(ResponseRoot)),
		harness.BodyContains(harness.Attr(AttrSuccess, harness.Literal(SuccessFalse))),
	}
	expect = append(expect, extra...)
	return append(expect, harness.BodyContains(harness.Attr(AttrErrCode, harness.Literal(errCode))))
}

func echoesOrderID() harness.Expectation {
	return harness.BodyContains(harness.Attr(AttrOrderID, harness.Ref(VarOrderID)))
}

// Scenarios is the catalog of Block checks, in run order.
func Scenarios(f Fixture) []harness.Case {
	correct := func(v harness.Vars) harness.RequestSpec {
		return f.Request(v[VarOrderID])
	}
	withoutPayInfoField := func(field string) harness.RequestFunc {
		return func(v harness.Vars) harness.RequestSpec {
			id := v[VarOrderID]
			return f.RequestWithPayInfo(id, f.PayInfo(id).Without(field))
		}
	}

	correctRequest := harness.Case{
		Name:        "correct_request",
		Description: "Key, Amount, OrderId and PayInfo all present and well-formed",
		Vars:        freshOrderID(),
		Request:     correct,
		Expect: succeeded(
			echoesOrderID(),
			harness.BodyContains(harness.Attr(AttrAmount, harness.Literal(f.Amount))),
		),
	}

	cases := []harness.Case{
		correctRequest,
		{
			Name:        "without_key",
			Description: "OrderId, Amount and PayInfo present, Key omitted",
			Vars:        freshOrderID(),
			Request: func(v harness.Vars) harness.RequestSpec {
				return correct(v).Without(ParamKey)
			},
			Expect: failedWith(ErrAccessDenied),
			Drift:  "live sandbox was observed to disagree with ACCESS_DENIED for a missing Key; re-verify",
		},
		{
			Name:        "duplicate_order_id",
			Description: "well-formed request reusing an OrderId that was already blocked",
			Vars:        freshOrderID(),
			Prime:       []harness.RequestFunc{correct},
			Request:     correct,
			Expect:      failedWith(ErrDuplicateOrderID, echoesOrderID()),
		},
	}

	if f.KnownDuplicateOrderID != "" {
		known := f.KnownDuplicateOrderID
		cases = append(cases, harness.Case{
			Name:        "known_duplicate_order_id",
			Description: "well-formed request with an OrderId used in an earlier run",
			Request: func(harness.Vars) harness.RequestSpec {
				return f.Request(known)
			},
			Expect: failedWith(ErrDuplicateOrderID,
				harness.BodyContains(harness.Attr(AttrOrderID, harness.Literal(known)))),
		})
	}

	cases = append(cases,
		harness.Case{
			Name:        "without_order_id",
			Description: "Key, Amount and PayInfo present, OrderId omitted",
			Vars:        freshOrderID(),
			Request: func(v harness.Vars) harness.RequestSpec {
				return correct(v).Without(ParamOrderID)
			},
			Expect: failedWith(ErrWrongParams,
				harness.BodyContains(harness.Attr(AttrOrderID, harness.Literal("")))),
		},
		harness.Case{
			Name:        "without_amount",
			Description: "Key, OrderId and PayInfo present, Amount omitted",
			Vars:        freshOrderID(),
			Request: func(v harness.Vars) harness.RequestSpec {
				return correct(v).Without(ParamAmount)
			},
			Expect: failedWith(ErrAmount, echoesOrderID()),
		},
		harness.Case{
			Name:        "without_pay_info",
			Description: "Key, Amount and OrderId present, PayInfo omitted",
			Vars:        freshOrderID(),
			Request: func(v harness.Vars) harness.RequestSpec {
				return correct(v).Without(ParamPayInfo)
			},
			Expect: failedWith(ErrWrongPayInfo),
			Drift:  "live sandbox was observed to disagree with WRONG_PAY_INFO for a missing PayInfo; re-verify",
		},
		harness.Case{
			Name:        "pay_info_without_pan",
			Description: "PayInfo lacks PAN",
			Vars:        freshOrderID(),
			Request:     withoutPayInfoField(FieldPAN),
			Expect:      failedWith(ErrWrongPAN),
		},
		harness.Case{
			Name:        "pay_info_without_emonth",
			Description: "PayInfo lacks EMonth",
			Vars:        freshOrderID(),
			Request:     withoutPayInfoField(FieldEMonth),
			Expect:      failedWith(ErrWrongExpireDate),
		},
		harness.Case{
			Name:        "pay_info_without_eyear",
			Description: "PayInfo lacks EYear",
			Vars:        freshOrderID(),
			Request:     withoutPayInfoField(FieldEYear),
			Expect:      failedWith(ErrCardExpired),
		},
	)

	return append(cases, harness.Repeat(correctRequest, RepeatCount)...)
}
