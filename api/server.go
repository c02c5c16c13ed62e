package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/shreya029/foodshare/lifecycle"
	"github.com/shreya029/foodshare/logmodule"
	"github.com/shreya029/foodshare/metrics"
	"github.com/shreya029/foodshare/store"
	"github.com/shreya029/foodshare/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// JWT public key of the identity provider
	jwtPublicKey *rsa.PublicKey

	// clock for handlers that need a single instant per request
	now func() time.Time
}

// NewServer new instance of server
func NewServer(mongoStore store.MongoStore, jwtKey *rsa.PublicKey) *Server {
	return &Server{
		mongoStore:   mongoStore,
		jwtPublicKey: jwtKey,
		now:          time.Now,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(corsMiddleware(viper.GetStringSlice("cors.origins")))
	apiRoute.GET("/information", s.information)

	auth := s.authMiddleware()
	admin := adminOnly()

	donationRoute := apiRoute.Group("/donations")
	{
		donationRoute.GET("", s.listDonations)
		donationRoute.POST("", auth, s.createDonation)
		donationRoute.GET("/available", s.listAvailableDonations)
		donationRoute.GET("/my", auth, s.listMyDonations)
		donationRoute.GET("/:id", s.getDonation)
		donationRoute.PUT("/:id", auth, s.updateDonation)
		donationRoute.DELETE("/:id", auth, s.deleteDonation)
		donationRoute.POST("/:id/request", auth, s.requestDonation)
	}

	foodItemRoute := apiRoute.Group("/food-items")
	{
		foodItemRoute.GET("", s.listFoodItems)
		foodItemRoute.POST("", auth, s.createFoodItem)
		foodItemRoute.GET("/stats", s.foodItemStats)
		foodItemRoute.GET("/:id", s.getFoodItem)
		foodItemRoute.PUT("/:id/collect", auth, s.collectFoodItem)
		foodItemRoute.DELETE("/:id", auth, s.deleteFoodItem)
	}

	requestRoute := apiRoute.Group("/requests")
	requestRoute.Use(auth)
	{
		requestRoute.GET("", admin, s.listRequests)
		requestRoute.POST("/create", s.createRequest)
		requestRoute.GET("/my", s.listMyRequests)
		requestRoute.GET("/:id", s.getRequest)
		requestRoute.PUT("/:id", s.updateRequest)
		requestRoute.DELETE("/:id", s.deleteRequest)
	}

	volunteerRoute := apiRoute.Group("/volunteer")
	{
		volunteerRoute.POST("", s.createVolunteer)
		volunteerRoute.GET("", s.listVolunteers)
		volunteerRoute.POST("/:id/reward", auth, admin, s.addVolunteerReward)
		volunteerRoute.POST("/:id/stars", auth, admin, s.addVolunteerStars)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	metricRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.metric")))
	{
		metricRoute.GET("", gin.WrapH(metrics.Handler()))
	}

	r.GET("/healthz", s.healthz)

	if dir := viper.GetString("server.static_dir"); dir != "" {
		r.NoRoute(staticFiles(dir))
	}

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length", logmodule.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	} else {
		config.AllowOrigins = origins
	}
	return cors.New(config)
}

// staticFiles serves the web front-end for any GET that matched no api route
func staticFiles(dir string) gin.HandlerFunc {
	files := http.FileServer(http.Dir(dir))
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			abortWithEncoding(c, http.StatusNotFound, errorNotFound)
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	}
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	abortWithError(c, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"languages":      utils.SupportedLanguages,
			"system_version": "FoodShare 1.0",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	obj.Success = false
	obj.Message = utils.Localize(c.GetHeader("Accept-Language"), obj.messageID(), obj.Message)

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

// abortWithError answers with the response classified for err. Failures
// outside the domain taxonomy are reported to sentry.
func abortWithError(c *gin.Context, err error) {
	code, resp := classify(err)
	if code == http.StatusInternalServerError {
		log.WithField("request_id", c.GetString("request_id")).Error(err)
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		}
	}
	abortWithEncoding(c, code, resp, err)
}

func identityOf(c *gin.Context) lifecycle.Identity {
	identity, _ := c.MustGet("identity").(lifecycle.Identity)
	return identity
}
