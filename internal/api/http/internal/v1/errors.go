package v1

const unknownErrorMessage = "unknown error"

// Response messages
const (
	UserRegisteredMessage = "user registered successfully, please verify your phone number"
	OtpSentMessage        = "otp sent successfully"
	PhoneVerifiedMessage  = "phone number verified successfully"
	LoginSuccessMessage   = "logged in successfully"
	UserProfileMessage    = "user profile fetched successfully"
	WatchlistMessage      = "watchlist fetched successfully"
)

type ValidationErrorStruct struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
} // @name ValidationError
