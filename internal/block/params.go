// Package block describes requests to a payment gateway's Block operation,
// which holds funds on a card without charging it, and the catalog of
// checks run against it.
package block

// Query parameters of a Block request.
const (
	ParamKey     = "Key"
	ParamAmount  = "Amount"
	ParamOrderID = "OrderId"
	ParamPayInfo = "PayInfo"
)

// PayInfo fields.
const (
	FieldPAN        = "PAN"
	FieldEMonth     = "EMonth"
	FieldEYear      = "EYear"
	FieldCardHolder = "CardHolder"
	FieldSecureCode = "SecureCode"
	FieldOrderID    = "OrderId"
	FieldAmount     = "Amount"
)

// Response attributes.
const (
	ResponseRoot = "Block"
	AttrSuccess  = "Success"
	AttrOrderID  = "OrderId"
	AttrAmount   = "Amount"
	AttrKey      = "Key"
	AttrErrCode  = "ErrCode"

	SuccessTrue  = "True"
	SuccessFalse = "False"
)

// ErrCode values the gateway reports on failure.
const (
	ErrAccessDenied     = "ACCESS_DENIED"
	ErrDuplicateOrderID = "DUPLICATE_ORDER_ID"
	ErrWrongParams      = "WRONG_PARAMS"
	ErrAmount           = "AMOUNT_ERROR"
	ErrWrongPayInfo     = "WRONG_PAY_INFO"
	ErrWrongPAN         = "WRONG_PAN"
	ErrWrongExpireDate  = "WRONG_EXPIRE_DATE"
	ErrCardExpired      = "CARD_EXPIRED"
)

var ErrCodes = []string{
	ErrAccessDenied,
	ErrDuplicateOrderID,
	ErrWrongParams,
	ErrAmount,
	ErrWrongPayInfo,
	ErrWrongPAN,
	ErrWrongExpireDate,
	ErrCardExpired,
}
