package domain

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region ItemNotFoundError

type ItemNotFoundError struct {
	Msg string
}

func (e *ItemNotFoundError) Error() string {
	return e.Msg
}

func (e *ItemNotFoundError) Is(target error) bool {
	_, ok := target.(*ItemNotFoundError)
	return ok
}

//endregion

//region ItemNotEnabledError

type ItemNotEnabledError struct {
	Msg string
}

func (e *ItemNotEnabledError) Error() string {
	return e.Msg
}

func (e *ItemNotEnabledError) Is(target error) bool {
	_, ok := target.(*ItemNotEnabledError)
	return ok
}

//endregion

//region OutOfStockError

type OutOfStockError struct {
	Msg string
}

func (e *OutOfStockError) Error() string {
	return e.Msg
}

func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Msg string
}

func (e *InsufficientFundsError) Error() string {
	return e.Msg
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region BalanceChangedError

type BalanceChangedError struct {
	Msg string
}

func (e *BalanceChangedError) Error() string {
	return e.Msg
}

func (e *BalanceChangedError) Is(target error) bool {
	_, ok := target.(*BalanceChangedError)
	return ok
}

//endregion

//region WalletNotFoundError

type WalletNotFoundError struct {
	Msg string
}

func (e *WalletNotFoundError) Error() string {
	return e.Msg
}

func (e *WalletNotFoundError) Is(target error) bool {
	_, ok := target.(*WalletNotFoundError)
	return ok
}

//endregion
