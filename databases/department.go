package databases

// go generate: mockery --name DepartmentDatabase --name DepartmentStatDatabase

import (
	"context"

	"github.com/imdcare/reports-api/models"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	departmentName     = "departments"
	departmentStatName = "departmentstats"
)

// DepartmentDatabase contains the methods to use with the departments database
type DepartmentDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Department, error)
}

type departmentDatabase struct {
	db DatabaseHelper
}

// NewDepartmentDatabase initializes a new instance of department database with the provided db connection
func NewDepartmentDatabase(db DatabaseHelper) DepartmentDatabase {
	return &departmentDatabase{
		db: db,
	}
}

func (c *departmentDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Department, error) {
	var departments []models.Department
	err := c.db.Collection(departmentName).Find(ctx, filter, opts...).Decode(&departments)
	if err != nil {
		return nil, err
	}
	return departments, nil
}

// DepartmentStatDatabase contains the methods to use with the legacy
// departmentstats database
type DepartmentStatDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.DepartmentStat, error)
}

type departmentStatDatabase struct {
	db DatabaseHelper
}

// NewDepartmentStatDatabase initializes a new instance of department stat database with the provided db connection
func NewDepartmentStatDatabase(db DatabaseHelper) DepartmentStatDatabase {
	return &departmentStatDatabase{
		db: db,
	}
}

func (c *departmentStatDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.DepartmentStat, error) {
	var stats []models.DepartmentStat
	err := c.db.Collection(departmentStatName).Find(ctx, filter, opts...).Decode(&stats)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
