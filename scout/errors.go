package scout

import "fmt"

// ExchangeErr is the error type returned by Exchange implementations.
type ExchangeErr struct {
	Err          string
	ExchangeName string
}

func (e *ExchangeErr) Error() string {
	return fmt.Sprintf("exchange %s error: %s", e.ExchangeName, e.Err)
}

func NewExchangeErr(exchangeName, err string) *ExchangeErr {
	return &ExchangeErr{
		Err:          err,
		ExchangeName: exchangeName,
	}
}
