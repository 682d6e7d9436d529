package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator plugs go-playground/validator into echo's Bind/Validate
// flow.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the echo validator used by the server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

type registerCustomerRequest struct {
	Phone    string `json:"phone"    validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginCustomerRequest struct {
	Phone    string `json:"phone"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginDriverRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createOrderRequest struct {
	ServiceType     string `json:"serviceType"     validate:"required,oneof=delivery ride"`
	PickupAddress   string `json:"pickupAddress"   validate:"required"`
	DeliveryAddress string `json:"deliveryAddress" validate:"required"`
	ItemDescription string `json:"itemDescription"`
	ItemWeight      string `json:"itemWeight"`
	ItemValue       string `json:"itemValue"`
	Distance        string `json:"distance"`
	Notes           string `json:"notes"`
	PaymentMethod   string `json:"paymentMethod"`
	Price           int64  `json:"price"           validate:"gte=0"`
}

type advanceOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

type assignOrderRequest struct {
	DriverID string `json:"driverId" validate:"required,uuid"`
}

type addDriverRequest struct {
	Name     string `json:"name"     validate:"required"`
	Phone    string `json:"phone"    validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	IsAdmin  bool   `json:"isAdmin"`
}

type updateDriverRequest struct {
	Name     *string  `json:"name"`
	Phone    *string  `json:"phone"`
	Rating   *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Password *string  `json:"password" validate:"omitempty,min=6"`
}

type setDriverDutyRequest struct {
	Status string `json:"status" validate:"required,oneof=on_duty off_duty"`
}

type updateSettingsRequest struct {
	OrderTimeoutMinutes int    `json:"orderTimeoutMinutes" validate:"required,gt=0"`
	QueueCheckMinutes   int    `json:"queueCheckMinutes"   validate:"required,gt=0"`
	AutoCleanupDays     int    `json:"autoCleanupDays"     validate:"required,gt=0"`
	OperatingHoursStart string `json:"operatingHoursStart" validate:"required"`
	OperatingHoursEnd   string `json:"operatingHoursEnd"   validate:"required"`
}
