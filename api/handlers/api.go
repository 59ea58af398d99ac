package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/imdcare/reports-api/api"
	"github.com/imdcare/reports-api/api/scheduler"
	"github.com/imdcare/reports-api/config"
	"github.com/imdcare/reports-api/databases"
	"github.com/imdcare/reports-api/models"
	"github.com/imdcare/reports-api/pdf"
	"github.com/imdcare/reports-api/snapshot"
)

// requestTimeout bounds every report request end to end
const requestTimeout = 30 * time.Second

// App stores the router, db connection and scheduler, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Scheduler *scheduler.Scheduler
	dbHelper  databases.DatabaseHelper
	store     *snapshot.Store
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.store == nil {
		a.store = snapshot.NewStore(snapshot.Databases{
			Patients:      databases.NewPatientDatabase(a.dbHelper),
			Consultations: databases.NewConsultationDatabase(a.dbHelper),
			Appointments:  databases.NewAppointmentDatabase(a.dbHelper),
		})
	}

	rep := Reports{
		Store:  a.store,
		DeptDB: databases.NewDepartmentDatabase(a.dbHelper),
		Config: a.Config,
	}
	stats := DepartmentStats{DB: databases.NewDepartmentStatDatabase(a.dbHelper)}
	exports := Exports{
		Store:    a.store,
		Exporter: &pdf.Exporter{LogoURL: a.Config.LogoURL},
	}

	wrap := func(h http.HandlerFunc) http.Handler {
		return api.RequestLogger(api.TimeoutMiddleware(requestTimeout)(h))
	}

	r := mux.NewRouter()

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	// legacy dashboard widget feed, kept on its original path
	r.Handle("/api/department-stats", wrap(stats.DepartmentStatsHandler)).Methods("GET")

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/reports/summary", wrap(rep.SummaryHandler)).Methods("GET")
	apiCreate.Handle("/reports/doctors", wrap(rep.DoctorStatsHandler)).Methods("GET")
	apiCreate.Handle("/reports/discharges", wrap(rep.DischargeStatsHandler)).Methods("GET")
	apiCreate.Handle("/reports/long-stay", wrap(rep.LongStayHandler)).Methods("GET")
	apiCreate.Handle("/reports/departments", wrap(rep.DepartmentStatsHandler)).Methods("GET")
	apiCreate.Handle("/reports/specialties", wrap(rep.SpecialtyStatsHandler)).Methods("GET")
	apiCreate.Handle("/reports/safety", wrap(rep.SafetyStatsHandler)).Methods("GET")

	apiCreate.Handle("/reports/daily/export", wrap(exports.DailyExportHandler)).Methods("GET")
	apiCreate.Handle("/reports/long-stay/export", wrap(exports.LongStayExportHandler)).Methods("GET")
	apiCreate.Handle("/reports/admin/export", wrap(exports.AdminExportHandler)).Methods("GET", "POST")

	return r
}

// Initialize is invoked by main to connect with the database, create a router
// and start the background scheduler
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("reports-api has connected to the database")

	// initialize api router
	a.initializeRoutes()

	a.Scheduler = scheduler.New(a.store, &pdf.Exporter{LogoURL: a.Config.LogoURL}, a.Config)
	a.Scheduler.Start()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
