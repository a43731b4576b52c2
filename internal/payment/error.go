package payment

import "errors"

var ErrSlipNotFound = errors.New("payment slip not found")
