package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidBar           ErrorCode = 104

	// Data errors (200-299)
	ErrCodeDataNotFound          ErrorCode = 200
	ErrCodeDataSourceUnavailable ErrorCode = 201
	ErrCodeMarketDataParseFailed ErrorCode = 202

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeUnsupportedIndicator   ErrorCode = 302

	// Version errors (400-499)
	ErrCodeInvalidVersion  ErrorCode = 400
	ErrCodeVersionMismatch ErrorCode = 401

	// Output errors (500-599)
	ErrCodeOutputWriteFailed ErrorCode = 500
)
