package databases

// go generate: mockery --name PatientDatabase

import (
	"context"

	"github.com/imdcare/reports-api/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const patientName = "patients"

// PatientDatabase contains the methods to use with the patients database
type PatientDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Patient, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Patient, error)
}

type patientDatabase struct {
	db DatabaseHelper
}

// NewPatientDatabase initializes a new instance of patient database with the provided db connection
func NewPatientDatabase(db DatabaseHelper) PatientDatabase {
	return &patientDatabase{
		db: db,
	}
}

func (c *patientDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Patient, error) {
	patient := &models.Patient{}
	err := c.db.Collection(patientName).FindOne(ctx, filter, opts...).Decode(&patient)
	if err != nil {
		return nil, err
	}
	return patient, nil
}

func (c *patientDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Patient, error) {
	var patients []models.Patient
	err := c.db.Collection(patientName).Find(ctx, filter, opts...).Decode(&patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}
