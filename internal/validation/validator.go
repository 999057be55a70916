package validation

import (
	"reflect"
	"regexp"
	"strings"

	"eyesonplants/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("gender", validateGender)
	_ = v.RegisterValidation("user_role", validateUserRole)
	_ = v.RegisterValidation("plant_stage", validatePlantStage)
	_ = v.RegisterValidation("product_category", validateProductCategory)
	_ = v.RegisterValidation("order_status", validateOrderStatus)
	_ = v.RegisterValidation("reminder_type", validateReminderType)
	_ = v.RegisterValidation("device_type", validateDeviceType)
	_ = v.RegisterValidation("care_level", validateCareLevel)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// validatePhone validates that a phone number is digits with an optional
// leading plus sign
func validatePhone(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return true
	}
	return phoneRegex.MatchString(phone)
}

// validateGender validates that a gender is one of the allowed values
func validateGender(fl validator.FieldLevel) bool {
	gender := models.Gender(strings.ToUpper(fl.Field().String()))
	if gender == "" {
		return true
	}
	return gender.Valid()
}

// validateUserRole validates that a role is one of the registered roles
func validateUserRole(fl validator.FieldLevel) bool {
	role := models.Role(strings.ToUpper(fl.Field().String()))
	if role == "" {
		return true
	}
	return role.Valid()
}

// validatePlantStage validates that a stage is a known growth stage
func validatePlantStage(fl validator.FieldLevel) bool {
	stage := models.PlantStage(strings.ToUpper(fl.Field().String()))
	return stage.Valid()
}

// validateProductCategory validates that a category is a known catalog category
func validateProductCategory(fl validator.FieldLevel) bool {
	category := models.ProductCategory(strings.ToUpper(fl.Field().String()))
	return category.Valid()
}

// validateOrderStatus validates that a status is a known fulfilment state
func validateOrderStatus(fl validator.FieldLevel) bool {
	status := models.OrderStatus(strings.ToUpper(fl.Field().String()))
	return status.Valid()
}

// validateReminderType validates that a reminder type is a known care action
func validateReminderType(fl validator.FieldLevel) bool {
	reminderType := models.ReminderType(strings.ToUpper(fl.Field().String()))
	return reminderType.Valid()
}

// validateDeviceType validates that a device type is a supported push platform
func validateDeviceType(fl validator.FieldLevel) bool {
	deviceType := models.DeviceType(strings.ToLower(fl.Field().String()))
	return deviceType.Valid()
}

// validateCareLevel validates that a care level is a known difficulty grade
func validateCareLevel(fl validator.FieldLevel) bool {
	level := models.CareLevel(strings.ToUpper(fl.Field().String()))
	return level.Valid()
}
