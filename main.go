package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"stockdir/controllers"
	"stockdir/core"
	"stockdir/fetcher"
	"stockdir/internal"
	"stockdir/internal/finnhub"
	"stockdir/models"
	"stockdir/services"
	"stockdir/store"
)

func main() {
	godotenv.Load()

	// connect to the database
	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	// auto migrate the database
	err = db.AutoMigrate(
		&models.Company{},
		&models.CompanyStock{},
	)
	if err != nil {
		panic(err)
	}

	logger, err := internal.NewLogger()
	if err != nil {
		panic(err)
	}

	directory := services.NewDirectoryService(store.NewDirectory(db))
	provider := finnhub.NewClient(os.Getenv("FINNHUB_BASE_URL"), os.Getenv("FINNHUB_API_KEY"))
	snapshots := services.NewSnapshotService(store.NewDirectory(db), store.NewSnapshots(db), provider, logger)

	// set up commands
	if len(os.Args) > 1 && os.Args[1] == "warm_snapshots" {
		fetcher.NewSnapshotWarmer(directory, snapshots, logger).Run()
		return
	}

	runServer(db, directory, snapshots)
}

func runServer(db *gorm.DB, directory *services.DirectoryService, snapshots *services.SnapshotService) {
	// set up http server
	engine := gin.Default()
	err := engine.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	engine.Use(controllers.RequestID)

	router := controllers.Router{
		HealthController:    &controllers.HealthController{DB: db},
		CompaniesController: &controllers.CompaniesController{Directory: directory},
		StocksController:    &controllers.StocksController{Snapshots: snapshots},
	}
	router.RegisterRoutes(engine)

	err = engine.Run()
	if err != nil {
		return
	}
}
