package http

import (
	"time"

	"kurirkan/internal/core/application/usecases/commands"
	"kurirkan/internal/core/application/usecases/queries"
	"kurirkan/internal/core/domain/model/settings"
)

type loginResponse struct {
	Token   string `json:"token"`
	UserID  string `json:"userId"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}

func loginResponseFromCustomer(result commands.LoginCustomerResult) loginResponse {
	return loginResponse{
		Token:  result.Token,
		UserID: result.CustomerID,
		Name:   result.Name,
		Role:   "customer",
	}
}

func loginResponseFromDriver(result commands.LoginDriverResult) loginResponse {
	role := "driver"
	if result.IsAdmin {
		role = "admin"
	}
	return loginResponse{
		Token:   result.Token,
		UserID:  result.DriverID,
		Name:    result.Name,
		Role:    role,
		IsAdmin: result.IsAdmin,
	}
}

type timelineEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

type orderResponse struct {
	ID              string                  `json:"id"`
	OrderNumber     string                  `json:"orderNumber"`
	CustomerName    string                  `json:"customerName"`
	DriverName      string                  `json:"driverName,omitempty"`
	ServiceType     string                  `json:"serviceType"`
	Status          string                  `json:"status"`
	PickupAddress   string                  `json:"pickupAddress"`
	DeliveryAddress string                  `json:"deliveryAddress"`
	Price           int64                   `json:"price"`
	PaymentMethod   string                  `json:"paymentMethod"`
	CreatedAt       time.Time               `json:"createdAt"`
	DeliveredAt     *time.Time              `json:"deliveredAt,omitempty"`
	Timeline        []timelineEntryResponse `json:"timeline"`
}

func orderResponseFromQuery(o queries.OrderResponse) orderResponse {
	timeline := make([]timelineEntryResponse, 0, len(o.Timeline))
	for _, entry := range o.Timeline {
		timeline = append(timeline, timelineEntryResponse{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}
	return orderResponse{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		DriverName:      o.DriverName,
		ServiceType:     o.ServiceType,
		Status:          o.Status,
		PickupAddress:   o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
		Price:           o.Price,
		PaymentMethod:   o.PaymentMethod,
		CreatedAt:       o.CreatedAt,
		DeliveredAt:     o.DeliveredAt,
		Timeline:        timeline,
	}
}

type queueEntryResponse struct {
	OrderID       string    `json:"orderId"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	ServiceType   string    `json:"serviceType"`
	PickupAddress string    `json:"pickupAddress"`
	Priority      int       `json:"priority"`
	AddedAt       time.Time `json:"addedAt"`
}

type driverResponse struct {
	ID               string    `json:"id"`
	Code             string    `json:"code"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Username         string    `json:"username"`
	IsAdmin          bool      `json:"isAdmin"`
	Status           string    `json:"status"`
	CurrentOrderID   *string   `json:"currentOrderId,omitempty"`
	TodayOrders      int       `json:"todayOrders"`
	TotalOrders      int       `json:"totalOrders"`
	Rating           float64   `json:"rating"`
	Earnings         int64     `json:"earnings"`
	LastStatusUpdate time.Time `json:"lastStatusUpdate"`
}

func driverResponseFromQuery(d queries.GetAllDriversQueryResponse) driverResponse {
	var currentOrder *string
	if d.CurrentOrderID != nil {
		id := d.CurrentOrderID.String()
		currentOrder = &id
	}
	return driverResponse{
		ID:               d.ID.String(),
		Code:             d.Code,
		Name:             d.Name,
		Phone:            d.Phone,
		Username:         d.Username,
		IsAdmin:          d.IsAdmin,
		Status:           d.Status,
		CurrentOrderID:   currentOrder,
		TodayOrders:      d.TodayOrders,
		TotalOrders:      d.TotalOrders,
		Rating:           d.Rating,
		Earnings:         d.Earnings,
		LastStatusUpdate: d.LastStatusUpdate,
	}
}

type notificationResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"type"`
	OrderID   *string   `json:"orderId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func notificationResponseFromQuery(n queries.GetNotificationsQueryResponse) notificationResponse {
	var orderID *string
	if n.OrderID != nil {
		id := n.OrderID.String()
		orderID = &id
	}
	return notificationResponse{
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Kind:      n.Kind,
		OrderID:   orderID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

type settingsResponse struct {
	OrderTimeoutMinutes int    `json:"orderTimeoutMinutes"`
	QueueCheckMinutes   int    `json:"queueCheckMinutes"`
	AutoCleanupDays     int    `json:"autoCleanupDays"`
	OperatingHoursStart string `json:"operatingHoursStart"`
	OperatingHoursEnd   string `json:"operatingHoursEnd"`
}

func settingsResponseFromDomain(s settings.AppSettings) settingsResponse {
	return settingsResponse{
		OrderTimeoutMinutes: s.OrderTimeoutMinutes,
		QueueCheckMinutes:   s.QueueCheckMinutes,
		AutoCleanupDays:     s.AutoCleanupDays,
		OperatingHoursStart: s.OperatingHours.Start,
		OperatingHoursEnd:   s.OperatingHours.End,
	}
}

type createdResponse struct {
	ID string `json:"id"`
}
