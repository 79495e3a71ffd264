package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/customer"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/restaurant"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

	// ErrCityMismatch is returned when the customer and the restaurant are based
	// in different cities.
	ErrCityMismatch = errors.New("the restaurant and the customer must be in the same city")

	// ErrDriverOutOfCity is returned when the chosen driver is not based in the
	// city of the order.
	ErrDriverOutOfCity = errors.New("the driver must be based in the city of the order")
)

// TimePrecision is the resolution delivery times are stored with.
const TimePrecision = time.Microsecond

// Delivery is the aggregate root of an assignment.
//
// Invariants:
//   - Must reference a valid driver, restaurant and customer
//   - Delivery time must be set
//   - Distance must be in [kernel.MinKm, kernel.MaxKm)
//   - Immutable once constructed
type Delivery struct {
	id           kernel.UUID
	driverID     kernel.UUID
	restaurantID kernel.UUID
	customerID   kernel.UUID
	deliveryTime time.Time
	distance     kernel.Distance

	guard guard.ConstructorGuard
}

// NewDelivery binds a chosen driver to an order. It checks that the customer
// and the restaurant share a city and that the driver is based there.
//
// Example:
//
//	d, err := delivery.NewDelivery(chosen, meat, mozart, at, distance)
//	if errors.Is(err, delivery.ErrCityMismatch) {
//	    // reject the order
//	}
func NewDelivery(
	d *driver.Driver,
	r *restaurant.Restaurant,
	c *customer.Customer,
	deliveryTime time.Time,
	distance kernel.Distance,
) (*Delivery, error) {
	if err := errors.Join(d.Validate(), r.Validate(), c.Validate()); err != nil {
		return nil, err
	}

	if !r.SharesCityWith(c.CityID()) {
		return nil, ErrCityMismatch
	}

	if !d.IsBasedIn(c.CityID()) {
		return nil, ErrDriverOutOfCity
	}

	return RestoreDelivery(kernel.NewUUID(), d.ID(), r.ID(), c.ID(), deliveryTime, distance)
}

// RestoreDelivery rebuilds a delivery loaded from storage. Only field-level
// rules are checked because the referenced entities are not loaded.
func RestoreDelivery(
	id kernel.UUID,
	driverID kernel.UUID,
	restaurantID kernel.UUID,
	customerID kernel.UUID,
	deliveryTime time.Time,
	distance kernel.Distance,
) (*Delivery, error) {
	dl := &Delivery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		dl.setID(id),
		dl.setReference("driver", &dl.driverID, driverID),
		dl.setReference("restaurant", &dl.restaurantID, restaurantID),
		dl.setReference("customer", &dl.customerID, customerID),
		dl.setDeliveryTime(deliveryTime),
		dl.setDistance(distance),
	); err != nil {
		return nil, err
	}

	return dl, nil
}

// NormalizeTime converts t to the form delivery times are compared in.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(TimePrecision)
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID           { return d.id }
func (d *Delivery) DriverID() kernel.UUID     { return d.driverID }
func (d *Delivery) RestaurantID() kernel.UUID { return d.restaurantID }
func (d *Delivery) CustomerID() kernel.UUID   { return d.customerID }
func (d *Delivery) DeliveryTime() time.Time   { return d.deliveryTime }
func (d *Delivery) Distance() kernel.Distance { return d.distance }

// IsAssignedTo reports whether the delivery is carried by driverID.
func (d *Delivery) IsAssignedTo(driverID kernel.UUID) bool {
	return d.driverID.IsEqual(driverID)
}

// IsScheduledAt compares delivery times exactly, after normalization. There is
// no tolerance window: deliveries a microsecond apart do not collide.
func (d *Delivery) IsScheduledAt(t time.Time) bool {
	return d.deliveryTime.Equal(NormalizeTime(t))
}

// Collides reports whether the delivery books driverID at time t.
func (d *Delivery) Collides(driverID kernel.UUID, t time.Time) bool {
	return d.IsAssignedTo(driverID) && d.IsScheduledAt(t)
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setReference(name string, field *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*field = id
	return nil
}

func (d *Delivery) setDeliveryTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}
	d.deliveryTime = NormalizeTime(t)
	return nil
}

func (d *Delivery) setDistance(distance kernel.Distance) error {
	if err := distance.Validate(); err != nil {
		return err
	}
	d.distance = distance
	return nil
}
