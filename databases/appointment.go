package databases

// go generate: mockery --name AppointmentDatabase

import (
	"context"

	"github.com/imdcare/reports-api/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const appointmentName = "appointments"

// AppointmentDatabase contains the methods to use with the appointments database
type AppointmentDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Appointment, error)
}

type appointmentDatabase struct {
	db DatabaseHelper
}

// NewAppointmentDatabase initializes a new instance of appointment database with the provided db connection
func NewAppointmentDatabase(db DatabaseHelper) AppointmentDatabase {
	return &appointmentDatabase{
		db: db,
	}
}

func (c *appointmentDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := c.db.Collection(appointmentName).Find(ctx, filter, opts...).Decode(&appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
