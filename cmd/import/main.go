package main

import (
	"context"
	"flag"
	"log"
	"os"

	"backend/internal/database"
	"backend/internal/repository"
	"backend/internal/service"

	"github.com/joho/godotenv"
)

// Ingests a purchase-history CSV export into the order store, replacing
// whatever order set was there before. Run the API's cache invalidation
// afterwards so cached views pick up the new set.
func main() {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}

	dataDir := flag.String("data", "", "path to the export directory (defaults to DATA_DIR)")
	flag.Parse()

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("DATA_DIR")
	}
	if dir == "" {
		dir = "data"
	}

	driver, dsn := database.FromEnv()
	db, err := database.NewConnection(driver, dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	orderRepo := repository.NewOrderRepository(db)
	txMgr := repository.NewTransactionManager(db)
	importService := service.NewImportService(orderRepo, txMgr)

	result, err := importService.ImportAll(context.Background(), dir)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import complete: %d retail orders, %d digital items, %d returns matched, %d rows skipped",
		result.RetailOrders, result.DigitalItems, result.Returns, result.Skipped)
}
