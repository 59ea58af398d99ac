package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/imdcare/reports-api/api"
	"github.com/imdcare/reports-api/databases"
	"github.com/imdcare/reports-api/models"
)

// DepartmentStats exported for testing purposes
type DepartmentStats struct {
	DB databases.DepartmentStatDatabase
}

// DepartmentStatsHandler serves the legacy department statistics feed. The
// dashboard widget that consumes it expects a bare array and, on failure,
// exactly {"error":"Internal Server Error"}.
func (d DepartmentStats) DepartmentStatsHandler(w http.ResponseWriter, r *http.Request) {
	include := r.URL.Query().Get("include")
	zap.S().Debugf("include: '%v'", include)

	filter := bson.M{}
	if include != "all" {
		filter = bson.M{"isNew": true}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := d.DB.Find(ctx, filter)
	if err != nil {
		zap.S().With(err).Error("failed to get department stats")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}

	// The widget requires an array even when the collection is empty
	if len(dbResp) == 0 {
		dbResp = []models.DepartmentStat{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		zap.S().With(err).Error("failed to marshal department stats")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
