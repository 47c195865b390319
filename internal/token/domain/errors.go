package domain

//region UnauthorizedError

type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string {
	return e.Msg
}

func (e *UnauthorizedError) Is(target error) bool {
	_, ok := target.(*UnauthorizedError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
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

//region InvalidAmountError

type InvalidAmountError struct {
	Msg string
}

func (e *InvalidAmountError) Error() string {
	return e.Msg
}

func (e *InvalidAmountError) Is(target error) bool {
	_, ok := target.(*InvalidAmountError)
	return ok
}

//endregion

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
