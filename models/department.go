package models

// Department holds the structure for the departments collection in mongo
type Department struct {
	ID   string `json:"_id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// DepartmentStat holds the structure for the departmentstats collection in
// mongo, served as-is by the legacy department-stats endpoint
type DepartmentStat struct {
	DepartmentName string `json:"departmentName" bson:"departmentName"`
	Statistic      string `json:"statistic" bson:"statistic"`
	IsNew          bool   `json:"-" bson:"isNew"`
}
