package databases

// go generate: mockery --name ConsultationDatabase

import (
	"context"

	"github.com/imdcare/reports-api/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const consultationName = "consultations"

// ConsultationDatabase contains the methods to use with the consultations database
type ConsultationDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Consultation, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Consultation, error)
}

type consultationDatabase struct {
	db DatabaseHelper
}

// NewConsultationDatabase initializes a new instance of consultation database with the provided db connection
func NewConsultationDatabase(db DatabaseHelper) ConsultationDatabase {
	return &consultationDatabase{
		db: db,
	}
}

func (c *consultationDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Consultation, error) {
	consultation := &models.Consultation{}
	err := c.db.Collection(consultationName).FindOne(ctx, filter, opts...).Decode(&consultation)
	if err != nil {
		return nil, err
	}
	return consultation, nil
}

func (c *consultationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := c.db.Collection(consultationName).Find(ctx, filter, opts...).Decode(&consultations)
	if err != nil {
		return nil, err
	}
	return consultations, nil
}
