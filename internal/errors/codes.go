package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthInvalidToken           ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidPhone  ErrorCode = "VALIDATION_006"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInvalidID     ErrorCode = "USER_003"
)

// Plant error codes (PLANT_*)
const (
	PlantNotFound     ErrorCode = "PLANT_001"
	PlantInvalidStage ErrorCode = "PLANT_002"
	PlantNotOwned     ErrorCode = "PLANT_003"
)

// Product error codes (PRODUCT_*)
const (
	ProductNotFound        ErrorCode = "PRODUCT_001"
	ProductInvalidCategory ErrorCode = "PRODUCT_002"
	ProductOutOfStock      ErrorCode = "PRODUCT_003"
	ProductNotOwned        ErrorCode = "PRODUCT_004"
)

// Cart error codes (CART_*)
const (
	CartNotFound        ErrorCode = "CART_001"
	CartItemNotFound    ErrorCode = "CART_002"
	CartInvalidQuantity ErrorCode = "CART_003"
	CartEmpty           ErrorCode = "CART_004"
)

// Order error codes (ORDER_*)
const (
	OrderNotFound          ErrorCode = "ORDER_001"
	OrderInvalidStatus     ErrorCode = "ORDER_002"
	OrderInvalidTransition ErrorCode = "ORDER_003"
	OrderNotCancellable    ErrorCode = "ORDER_004"
)

// Care guide error codes (CARE_GUIDE_*)
const (
	CareGuideNotFound ErrorCode = "CARE_GUIDE_001"
)

// Disease error codes (DISEASE_*)
const (
	DiseaseNotFound ErrorCode = "DISEASE_001"
)

// Reminder error codes (REMINDER_*)
const (
	ReminderNotFound    ErrorCode = "REMINDER_001"
	ReminderInvalidType ErrorCode = "REMINDER_002"
)

// Notification error codes (NOTIFICATION_*)
const (
	NotificationSendFailed  ErrorCode = "NOTIFICATION_001"
	DeviceTokenNotFound     ErrorCode = "NOTIFICATION_002"
	NotificationNoRecipient ErrorCode = "NOTIFICATION_003"
)

// AI scan error codes (AI_*)
const (
	AIScanFailed      ErrorCode = "AI_001"
	AIScanUnavailable ErrorCode = "AI_002"
	AIInvalidImage    ErrorCode = "AI_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages.
// All token failure kinds share one message so the boundary never reveals
// why a token was rejected.
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthInvalidToken:           "Invalid token",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidPhone:  "Invalid phone number format",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email or username already exists",
	UserInvalidID:     "Invalid user ID format",

	// Plant errors
	PlantNotFound:     "Plant not found",
	PlantInvalidStage: "Invalid plant growth stage",
	PlantNotOwned:     "Plant belongs to another user",

	// Product errors
	ProductNotFound:        "Product not found",
	ProductInvalidCategory: "Invalid product category",
	ProductOutOfStock:      "Product is out of stock",
	ProductNotOwned:        "Product belongs to another seller",

	// Cart errors
	CartNotFound:        "Cart not found",
	CartItemNotFound:    "Cart item not found",
	CartInvalidQuantity: "Invalid item quantity",
	CartEmpty:           "Cart is empty",

	// Order errors
	OrderNotFound:          "Order not found",
	OrderInvalidStatus:     "Invalid order status",
	OrderInvalidTransition: "Order status transition not allowed",
	OrderNotCancellable:    "Order can no longer be cancelled",

	// Care guide errors
	CareGuideNotFound: "Care guide not found",

	// Disease errors
	DiseaseNotFound: "Disease not found",

	// Reminder errors
	ReminderNotFound:    "Reminder not found",
	ReminderInvalidType: "Invalid reminder type",

	// Notification errors
	NotificationSendFailed:  "Failed to send push notification",
	DeviceTokenNotFound:     "Device token not found",
	NotificationNoRecipient: "No registered devices for this user",

	// AI scan errors
	AIScanFailed:      "Plant scan failed",
	AIScanUnavailable: "Plant scan service is temporarily unavailable",
	AIInvalidImage:    "Invalid or missing image file",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
