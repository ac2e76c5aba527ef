package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "eventops/docs"
)

// Server holds the synced collections every handler works against. There is
// no ambient global state: the record store is injected here and nowhere else.
type Server struct {
	items         *SyncedCollection[DonationItem]
	registrations *SyncedCollection[Registration]
}

// NewServer wires the gateways over a record store.
func NewServer(store *RecordStore) *Server {
	return &Server{
		items:         NewSyncedCollection(store.Items),
		registrations: NewSyncedCollection(store.Registrations),
	}
}

// Load does the initial fetch of both collections.
func (s *Server) Load(ctx context.Context) error {
	if err := s.items.Load(ctx); err != nil {
		return err
	}
	return s.registrations.Load(ctx)
}

// Router builds the gin engine with CORS, all API routes, and swagger docs.
func (s *Server) Router(allowedOrigin string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	s.registerRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// registerRoutes mounts the API routes; tests mount them on a bare engine.
func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/api/donations", s.getDonations)
	r.POST("/api/donations", s.createDonation)
	r.PUT("/api/donations/:id/fulfilled", s.setDonationFulfilled)
	r.PUT("/api/donations/:id/contribute", s.contributeDonation)
	r.DELETE("/api/donations/:id", s.deleteDonation)

	r.GET("/api/registrations", s.getRegistrations)
	r.POST("/api/registrations", s.createRegistration)
	r.PUT("/api/registrations/:id", s.updateRegistration)
	r.DELETE("/api/registrations/:id", s.deleteRegistration)

	r.GET("/api/portfolios", s.getPortfolios)
	r.GET("/api/statistics", s.getStatistics)
	r.GET("/api/export", s.exportRegistrations)
}
