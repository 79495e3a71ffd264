package ports

import "errors"

var (
	// ErrDriverAlreadyBooked is returned by DeliveryRepository.Add when storage
	// already holds a delivery for the same driver and time.
	ErrDriverAlreadyBooked = errors.New("driver already has a delivery at this time")

	// ErrAlreadyExists is returned when adding an entity whose identity or unique
	// name is taken.
	ErrAlreadyExists = errors.New("already exists")
)
