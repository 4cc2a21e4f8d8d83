package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/vivacar/internal/config"
	"github.com/BruksfildServices01/vivacar/internal/domain/access"
	accountDomain "github.com/BruksfildServices01/vivacar/internal/domain/account"
	rentalDomain "github.com/BruksfildServices01/vivacar/internal/domain/rental"
	vehicleDomain "github.com/BruksfildServices01/vivacar/internal/domain/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/handlers"
	"github.com/BruksfildServices01/vivacar/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/vivacar/internal/infra/repository"
	"github.com/BruksfildServices01/vivacar/internal/middleware"
	ucAccount "github.com/BruksfildServices01/vivacar/internal/usecase/account"
	ucRental "github.com/BruksfildServices01/vivacar/internal/usecase/rental"
	ucVehicle "github.com/BruksfildServices01/vivacar/internal/usecase/vehicle"
	"github.com/BruksfildServices01/vivacar/internal/validators"
)

// Infra reúne as dependências externas opcionais. VehicleCache nil vira
// cache.Noop; Photos nil desliga o upload de fotos.
type Infra struct {
	VehicleCache vehicleDomain.AvailabilityCache
	Photos       vehicleDomain.PhotoStorage
}

// Repositories permite montar as rotas sobre qualquer implementação.
type Repositories struct {
	Rentals  rentalDomain.Repository
	Vehicles vehicleDomain.Repository
	Accounts accountDomain.Repository
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {
	Mount(r, cfg, Repositories{
		Rentals:  infraRepo.NewRentalGormRepository(db),
		Vehicles: infraRepo.NewVehicleGormRepository(db),
		Accounts: infraRepo.NewAccountGormRepository(db),
	}, infra)
}

func Mount(r *gin.Engine, cfg *config.Config, repos Repositories, infra Infra) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))
	validators.RegisterBindings()

	// ======================================================
	// INFRA
	// ======================================================
	vehicleCache := infra.VehicleCache
	if vehicleCache == nil {
		vehicleCache = cache.Noop{}
	}

	var accountOpts []ucAccount.Option
	if cfg.CheckEmailDomain {
		accountOpts = append(accountOpts, ucAccount.WithEmailDomainCheck(validators.IsEmailDomainValid))
	}

	// ======================================================
	// USE CASES
	// ======================================================
	openRentalUC := ucRental.NewOpenRental(repos.Rentals, vehicleCache)
	closeRentalUC := ucRental.NewCloseRental(repos.Rentals, vehicleCache)
	listActiveUC := ucRental.NewListActiveRentals(repos.Rentals)
	listFinalizedUC := ucRental.NewListFinalizedRentals(repos.Rentals)
	listCustomerRentalsUC := ucRental.NewListCustomerRentals(repos.Rentals)
	exportFinalizedUC := ucRental.NewExportFinalizedRentals(listFinalizedUC)

	registerUC := ucAccount.NewRegister(repos.Accounts, accountOpts...)
	authenticateUC := ucAccount.NewAuthenticate(repos.Accounts)
	getAccountUC := ucAccount.NewGetAccount(repos.Accounts)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, authenticateUC, cfg)
	meHandler := handlers.NewMeHandler(getAccountUC, listCustomerRentalsUC)

	clientHandler := handlers.NewClientHandler(
		ucAccount.NewListCustomers(repos.Accounts),
		ucAccount.NewCreateCustomer(repos.Accounts, accountOpts...),
		ucAccount.NewUpdateCustomer(repos.Accounts, accountOpts...),
		ucAccount.NewDeleteCustomer(repos.Accounts),
		listCustomerRentalsUC,
	)

	vehicleHandler := handlers.NewVehicleHandler(handlers.VehicleUseCases{
		List:      ucVehicle.NewListVehicles(repos.Vehicles),
		Available: ucVehicle.NewListAvailableVehicles(repos.Vehicles, vehicleCache),
		Get:       ucVehicle.NewGetVehicle(repos.Vehicles),
		Create:    ucVehicle.NewCreateVehicle(repos.Vehicles, vehicleCache),
		Update:    ucVehicle.NewUpdateVehicle(repos.Vehicles, vehicleCache),
		Delete:    ucVehicle.NewDeleteVehicle(repos.Vehicles, vehicleCache),
		Photo:     ucVehicle.NewUploadPhoto(repos.Vehicles, vehicleCache, infra.Photos, cfg.Storage.MaxPhotoWidth),
	})

	rentalHandler := handlers.NewRentalHandler(
		openRentalUC,
		closeRentalUC,
		listActiveUC,
		listFinalizedUC,
		exportFinalizedUC,
		cfg.Timezone,
	)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/rentals", meHandler.Rentals)

			staff := secured.Group("/")
			staff.Use(middleware.RequireRole(access.RoleStaff))
			{
				// ------------------------------
				// CLIENTES
				// ------------------------------
				staff.GET("/clients", clientHandler.List)
				staff.POST("/clients", clientHandler.Create)
				staff.PATCH("/clients/:id", clientHandler.Update)
				staff.DELETE("/clients/:id", clientHandler.Delete)
				staff.GET("/clients/:id/rentals", clientHandler.Rentals)

				// ------------------------------
				// FROTA
				// ------------------------------
				staff.GET("/vehicles", vehicleHandler.List)
				staff.POST("/vehicles", vehicleHandler.Create)
				staff.GET("/vehicles/available", vehicleHandler.Available)
				staff.GET("/vehicles/:id", vehicleHandler.Get)
				staff.PATCH("/vehicles/:id", vehicleHandler.Update)
				staff.DELETE("/vehicles/:id", vehicleHandler.Delete)
				staff.POST("/vehicles/:id/photo", vehicleHandler.UploadPhoto)

				// ------------------------------
				// LOCAÇÕES
				// ------------------------------
				staff.GET("/rentals", rentalHandler.ListActive)
				staff.POST("/rentals", rentalHandler.Open)
				staff.POST("/rentals/:id/close", rentalHandler.Close)
				staff.GET("/rentals/finalized", rentalHandler.ListFinalized)
				staff.GET("/rentals/finalized/export", rentalHandler.ExportFinalized)
			}
		}
	}
}
