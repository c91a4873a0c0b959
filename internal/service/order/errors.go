package order

import "errors"

var ErrUndefinedStatus = errors.New("undefined order status")
