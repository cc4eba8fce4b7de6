package apperrors

import "errors"

// ErrInvalidCurrency indicates a currency code outside the supported set.
var ErrInvalidCurrency = errors.New("invalid currency")

// ErrProductNotSelected indicates an operation that requires a selected product.
var ErrProductNotSelected = errors.New("product not selected")

// ErrInvalidPaymentType indicates a payment type other than cash or card.
var ErrInvalidPaymentType = errors.New("invalid payment type")

// ErrInsufficientFunds indicates the entered cash does not cover the price.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInsufficientChange indicates the machine stock cannot produce the owed change.
var ErrInsufficientChange = errors.New("insufficient change")

// ErrAccountNotSelected indicates a card payment attempted without an account.
var ErrAccountNotSelected = errors.New("account not selected")

// ErrCardNotSelected indicates a card payment attempted without a card.
var ErrCardNotSelected = errors.New("card not selected")

// ErrInsufficientBalance indicates the card balance does not cover the price.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
