package constants

import "errors"

// Configuration and setup errors.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrInvalidOutputFormat = errors.New("invalid output format (use table, json or yaml)")
	ErrInvalidTransport    = errors.New("invalid transport (use stdio or http)")
)

// Command argument errors.
var (
	ErrInvoiceIDRequired = errors.New("a numeric invoice id is required")
	ErrClientIDRequired  = errors.New("a numeric client id is required")
	ErrExpenseIDRequired = errors.New("a numeric expense id is required")
)
