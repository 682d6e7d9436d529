package storage

import (
	"time"

	"kurirkan/internal/core/domain/model/customer"
	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/notification"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/core/domain/model/queue"
	"kurirkan/internal/core/domain/model/settings"
)

// Serialized collection shapes. Every collection is stored as a JSON array
// of these DTOs (settings as a single object). Enum fields are stored by
// wire name, not ordinal, so stored data stays readable and stable across
// reorderings of the Go constants.

type timelineEntryDTO struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

type orderDTO struct {
	ID              string             `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	CustomerID      string             `json:"customerId"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DriverID        *string            `json:"driverId,omitempty"`
	DriverName      string             `json:"driverName,omitempty"`
	ServiceType     string             `json:"serviceType"`
	PickupAddress   string             `json:"pickupAddress"`
	DeliveryAddress string             `json:"deliveryAddress"`
	ItemDescription string             `json:"itemDescription,omitempty"`
	ItemWeight      string             `json:"itemWeight,omitempty"`
	ItemValue       string             `json:"itemValue,omitempty"`
	Distance        string             `json:"distance,omitempty"`
	Notes           string             `json:"notes,omitempty"`
	PaymentMethod   string             `json:"paymentMethod"`
	Price           int64              `json:"price"`
	Status          string             `json:"status"`
	Timeline        []timelineEntryDTO `json:"timeline"`
	CreatedAt       time.Time          `json:"createdAt"`
	AssignedAt      *time.Time         `json:"assignedAt,omitempty"`
	PickedUpAt      *time.Time         `json:"pickedUpAt,omitempty"`
	DeliveredAt     *time.Time         `json:"deliveredAt,omitempty"`
	CancelledAt     *time.Time         `json:"cancelledAt,omitempty"`
}

func orderFromDomain(o *order.Order) orderDTO {
	var driverID *string
	if id := o.DriverID(); id != nil {
		s := id.String()
		driverID = &s
	}

	timeline := make([]timelineEntryDTO, 0, len(o.Timeline()))
	for _, entry := range o.Timeline() {
		timeline = append(timeline, timelineEntryDTO{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}

	details := o.Details()
	return orderDTO{
		ID:              o.ID().String(),
		OrderNumber:     o.OrderNumber().String(),
		CustomerID:      o.CustomerID().String(),
		CustomerName:    o.CustomerName(),
		CustomerPhone:   o.CustomerPhone().String(),
		DriverID:        driverID,
		DriverName:      o.DriverName(),
		ServiceType:     o.ServiceType().String(),
		PickupAddress:   o.PickupAddress(),
		DeliveryAddress: o.DeliveryAddress(),
		ItemDescription: details.ItemDescription,
		ItemWeight:      details.ItemWeight,
		ItemValue:       details.ItemValue,
		Distance:        details.Distance,
		Notes:           details.Notes,
		PaymentMethod:   details.PaymentMethod,
		Price:           details.Price,
		Status:          o.Status().String(),
		Timeline:        timeline,
		CreatedAt:       o.CreatedAt(),
		AssignedAt:      o.AssignedAt(),
		PickedUpAt:      o.PickedUpAt(),
		DeliveredAt:     o.DeliveredAt(),
		CancelledAt:     o.CancelledAt(),
	}
}

func orderToDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	number, err := kernel.OrderNumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.CustomerPhone)
	if err != nil {
		return nil, err
	}
	serviceType, err := order.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		parsed, parseErr := kernel.UUIDFromString(*dto.DriverID)
		if parseErr != nil {
			return nil, parseErr
		}
		driverID = &parsed
	}

	timeline := make([]order.TimelineEntry, 0, len(dto.Timeline))
	for _, entry := range dto.Timeline {
		entryStatus, entryErr := order.StatusFromString(entry.Status)
		if entryErr != nil {
			return nil, entryErr
		}
		timeline = append(timeline, order.TimelineEntry{
			Status:    entryStatus,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}

	return order.RestoreOrder(
		id, number, customerID, dto.CustomerName, phone,
		driverID, dto.DriverName, serviceType,
		dto.PickupAddress, dto.DeliveryAddress,
		order.Details{
			ItemDescription: dto.ItemDescription,
			ItemWeight:      dto.ItemWeight,
			ItemValue:       dto.ItemValue,
			Distance:        dto.Distance,
			Notes:           dto.Notes,
			PaymentMethod:   dto.PaymentMethod,
			Price:           dto.Price,
		},
		status, timeline, dto.CreatedAt,
		dto.AssignedAt, dto.PickedUpAt, dto.DeliveredAt, dto.CancelledAt,
	)
}

type driverDTO struct {
	ID               string    `json:"id"`
	Code             string    `json:"driverCode"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Username         string    `json:"username"`
	PasswordHash     string    `json:"passwordHash"`
	IsAdmin          bool      `json:"isAdmin"`
	Status           string    `json:"status"`
	CurrentOrder     *string   `json:"currentOrder,omitempty"`
	TodayOrders      int       `json:"todayOrders"`
	TotalOrders      int       `json:"totalOrders"`
	Rating           float64   `json:"rating"`
	Earnings         int64     `json:"earnings"`
	CreatedAt        time.Time `json:"createdAt"`
	LastStatusUpdate time.Time `json:"lastStatusUpdate"`
}

func driverFromDomain(d *driver.Driver) driverDTO {
	var currentOrder *string
	if id := d.CurrentOrder(); id != nil {
		s := id.String()
		currentOrder = &s
	}

	return driverDTO{
		ID:               d.ID().String(),
		Code:             d.Code(),
		Name:             d.Name(),
		Phone:            d.Phone().String(),
		Username:         d.Username(),
		PasswordHash:     d.PasswordHash(),
		IsAdmin:          d.IsAdmin(),
		Status:           d.Status().String(),
		CurrentOrder:     currentOrder,
		TodayOrders:      d.TodayOrders(),
		TotalOrders:      d.TotalOrders(),
		Rating:           d.Rating(),
		Earnings:         d.Earnings(),
		CreatedAt:        d.CreatedAt(),
		LastStatusUpdate: d.LastStatusUpdate(),
	}
}

func driverToDomain(dto driverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	status, err := driver.DutyStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentOrder *kernel.UUID
	if dto.CurrentOrder != nil {
		parsed, parseErr := kernel.UUIDFromString(*dto.CurrentOrder)
		if parseErr != nil {
			return nil, parseErr
		}
		currentOrder = &parsed
	}

	return driver.RestoreDriver(
		id, dto.Code, dto.Name, phone,
		dto.Username, dto.PasswordHash, dto.IsAdmin,
		status, currentOrder,
		dto.TodayOrders, dto.TotalOrders,
		dto.Rating, dto.Earnings,
		dto.CreatedAt, dto.LastStatusUpdate,
	)
}

type addressDTO struct {
	Label   string `json:"label"`
	Address string `json:"address"`
}

type customerDTO struct {
	ID             string       `json:"id"`
	Phone          string       `json:"phone"`
	Name           string       `json:"name"`
	PasswordHash   string       `json:"passwordHash"`
	Addresses      []addressDTO `json:"addresses,omitempty"`
	PaymentMethods []string     `json:"paymentMethods,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	LastLogin      time.Time    `json:"lastLogin"`
}

func customerFromDomain(c *customer.Customer) customerDTO {
	addresses := make([]addressDTO, 0, len(c.Addresses()))
	for _, a := range c.Addresses() {
		addresses = append(addresses, addressDTO{Label: a.Label, Address: a.Address})
	}

	return customerDTO{
		ID:             c.ID().String(),
		Phone:          c.Phone().String(),
		Name:           c.Name(),
		PasswordHash:   c.PasswordHash(),
		Addresses:      addresses,
		PaymentMethods: c.PaymentMethods(),
		CreatedAt:      c.CreatedAt(),
		LastLogin:      c.LastLogin(),
	}
}

func customerToDomain(dto customerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}

	addresses := make([]customer.Address, 0, len(dto.Addresses))
	for _, a := range dto.Addresses {
		addresses = append(addresses, customer.Address{Label: a.Label, Address: a.Address})
	}

	return customer.RestoreCustomer(
		id, phone, dto.Name, dto.PasswordHash,
		addresses, dto.PaymentMethods,
		dto.CreatedAt, dto.LastLogin,
	)
}

type queueItemDTO struct {
	OrderID  string    `json:"orderId"`
	Priority int       `json:"priority"`
	AddedAt  time.Time `json:"addedAt"`
}

func queueItemFromDomain(item queue.Item) queueItemDTO {
	return queueItemDTO{
		OrderID:  item.OrderID().String(),
		Priority: item.Priority(),
		AddedAt:  item.AddedAt(),
	}
}

func queueItemToDomain(dto queueItemDTO) (queue.Item, error) {
	orderID, err := kernel.UUIDFromString(dto.OrderID)
	if err != nil {
		return queue.Item{}, err
	}
	return queue.NewItem(orderID, dto.Priority, dto.AddedAt)
}

type notificationDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Kind      string    `json:"type"`
	OrderID   *string   `json:"orderId,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

func notificationFromDomain(n *notification.Notification) notificationDTO {
	var orderID *string
	if id := n.OrderID(); id != nil {
		s := id.String()
		orderID = &s
	}

	return notificationDTO{
		ID:        n.ID().String(),
		UserID:    n.UserID().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Kind:      n.Kind().String(),
		OrderID:   orderID,
		Read:      n.Read(),
		CreatedAt: n.CreatedAt(),
	}
}

func notificationToDomain(dto notificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromString(dto.UserID)
	if err != nil {
		return nil, err
	}
	kind, err := notification.KindFromString(dto.Kind)
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		parsed, parseErr := kernel.UUIDFromString(*dto.OrderID)
		if parseErr != nil {
			return nil, parseErr
		}
		orderID = &parsed
	}

	return notification.RestoreNotification(
		id, userID, dto.Title, dto.Message, kind, orderID, dto.Read, dto.CreatedAt,
	)
}

type operatingHoursDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type settingsDTO struct {
	OrderTimeoutMinutes int               `json:"orderTimeoutMinutes"`
	QueueCheckMinutes   int               `json:"queueCheckMinutes"`
	AutoCleanupDays     int               `json:"autoCleanupDays"`
	OperatingHours      operatingHoursDTO `json:"operatingHours"`
}

func settingsFromDomain(s settings.AppSettings) settingsDTO {
	return settingsDTO{
		OrderTimeoutMinutes: s.OrderTimeoutMinutes,
		QueueCheckMinutes:   s.QueueCheckMinutes,
		AutoCleanupDays:     s.AutoCleanupDays,
		OperatingHours: operatingHoursDTO{
			Start: s.OperatingHours.Start,
			End:   s.OperatingHours.End,
		},
	}
}

func settingsToDomain(dto settingsDTO) settings.AppSettings {
	return settings.AppSettings{
		OrderTimeoutMinutes: dto.OrderTimeoutMinutes,
		QueueCheckMinutes:   dto.QueueCheckMinutes,
		AutoCleanupDays:     dto.AutoCleanupDays,
		OperatingHours: settings.OperatingHours{
			Start: dto.OperatingHours.Start,
			End:   dto.OperatingHours.End,
		},
	}
}
