package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/shopspring/decimal"
)

// Relative locations of the purchase-history export files inside the data
// directory, as the export archive lays them out.
const (
	retailOrdersFile = "Retail.OrderHistory.1/Retail.OrderHistory.1.csv"
	digitalItemsFile = "Digital-Ordering.1/Digital Items.csv"
	returnsFile      = "Retail.CustomerReturns.1/Retail.CustomerReturns.1.csv"
)

// Sentinel strings the export uses for absent values.
const (
	notAvailable = "Not Available"
	cancelled    = "Cancelled"
)

// ImportResult reports how many rows each file contributed.
type ImportResult struct {
	RetailOrders int `json:"retail_orders"`
	DigitalItems int `json:"digital_items"`
	Returns      int `json:"returns"`
	Skipped      int `json:"skipped"`
}

// ImportService ingests a purchase-history CSV export into the order store.
// Cancelled and non-positive-price rows are dropped at ingest, so the stored
// order set is exactly the population every view aggregates. The whole set
// is swapped in one transaction.
type ImportService interface {
	ImportAll(ctx context.Context, dataDir string) (ImportResult, error)
}

type importService struct {
	orders repository.OrderRepository
	txMgr  repository.TransactionManager
}

func NewImportService(orders repository.OrderRepository, txMgr repository.TransactionManager) ImportService {
	return &importService{orders: orders, txMgr: txMgr}
}

func (s *importService) ImportAll(ctx context.Context, dataDir string) (ImportResult, error) {
	var result ImportResult

	returnedOrderIDs, returnCount, err := readReturnedOrderIDs(filepath.Join(dataDir, returnsFile))
	if err != nil {
		return result, err
	}
	result.Returns = returnCount

	retail, skippedRetail, err := readRetailOrders(filepath.Join(dataDir, retailOrdersFile), returnedOrderIDs)
	if err != nil {
		return result, err
	}
	result.RetailOrders = len(retail)

	digital, skippedDigital, err := readDigitalItems(filepath.Join(dataDir, digitalItemsFile), returnedOrderIDs)
	if err != nil {
		return result, err
	}
	result.DigitalItems = len(digital)
	result.Skipped = skippedRetail + skippedDigital

	all := append(retail, digital...)
	err = s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		return s.orders.ReplaceAll(txCtx, all)
	})
	if err != nil {
		return result, fmt.Errorf("failed to store imported orders: %w", err)
	}

	log.Printf("Imported %d retail orders, %d digital items (%d returns matched, %d rows skipped)",
		result.RetailOrders, result.DigitalItems, result.Returns, result.Skipped)
	return result, nil
}

func readRetailOrders(path string, returned map[string]bool) ([]model.Order, int, error) {
	var orders []model.Order
	skipped := 0

	err := forEachCSVRow(path, func(row map[string]string) {
		if row["Order Status"] == cancelled {
			skipped++
			return
		}
		totalOwed, ok := cleanDecimal(row["Total Owed"])
		if !ok || !totalOwed.IsPositive() {
			skipped++
			return
		}
		name := cleanText(row["Product Name"])
		if name == "" {
			skipped++
			return
		}

		// Spend is computed as price*quantity everywhere, so price must be
		// per unit. Fall back to the line total with quantity 1 when the
		// export omits the unit price.
		quantity := cleanQuantity(row["Quantity"])
		price, unitOK := cleanDecimal(row["Unit Price"])
		if !unitOK || !price.IsPositive() {
			price = totalOwed
			quantity = 1
		}

		orderID := cleanText(row["Order ID"])
		orders = append(orders, model.Order{
			OrderID:       orderID,
			OrderDate:     cleanDate(row["Order Date"]),
			ProductName:   name,
			Price:         price,
			Quantity:      quantity,
			Category:      CategorizeRetail(name),
			PaymentMethod: cleanText(row["Payment Instrument Type"]),
			IsDigital:     false,
			IsReturn:      returned[orderID],
		})
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, skipped, nil
}

func readDigitalItems(path string, returned map[string]bool) ([]model.Order, int, error) {
	var orders []model.Order
	skipped := 0

	err := forEachCSVRow(path, func(row map[string]string) {
		price, ok := cleanDecimal(row["OurPrice"])
		if !ok || !price.IsPositive() {
			skipped++
			return
		}
		name := cleanText(row["ProductName"])
		if name == "" {
			skipped++
			return
		}

		orderID := cleanText(row["OrderId"])
		subscriptionInfo := cleanText(row["SubscriptionOrderInfoList"])
		orders = append(orders, model.Order{
			OrderID:          orderID,
			OrderDate:        cleanDate(row["OrderDate"]),
			ProductName:      name,
			Price:            price,
			Quantity:         cleanQuantity(row["QuantityOrdered"]),
			Category:         CategorizeDigital(name, subscriptionInfo),
			PaymentMethod:    "Digital Purchase",
			IsDigital:        true,
			IsReturn:         returned[orderID],
			SubscriptionInfo: subscriptionInfo,
		})
	})
	if err != nil {
		return nil, 0, err
	}
	return orders, skipped, nil
}

func readReturnedOrderIDs(path string) (map[string]bool, int, error) {
	returned := make(map[string]bool)
	count := 0

	err := forEachCSVRow(path, func(row map[string]string) {
		if id := cleanText(row["Order Id"]); id != "" {
			returned[id] = true
			count++
		}
	})
	if err != nil {
		if os.IsNotExist(err) {
			// The returns file is optional in partial exports.
			return returned, 0, nil
		}
		return nil, 0, err
	}
	return returned, count, nil
}

// forEachCSVRow streams a headered CSV file, handing each record to fn as a
// header-keyed map. Rows with a different field count than the header are
// tolerated, matching the export's loose formatting.
func forEachCSVRow(path string, fn func(row map[string]string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = record[i]
			}
		}
		fn(row)
	}
}

// cleanText normalizes a CSV cell: the export's absent-value sentinels
// become empty strings.
func cleanText(value string) string {
	value = strings.TrimSpace(value)
	if value == notAvailable || value == model.SubscriptionNone {
		return ""
	}
	return value
}

// cleanDecimal parses a money cell, stripping the stray quotes some export
// rows carry.
func cleanDecimal(value string) (decimal.Decimal, bool) {
	value = strings.ReplaceAll(cleanText(value), "'", "")
	if value == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// cleanQuantity parses a quantity cell, defaulting to 1 when absent or
// malformed.
func cleanQuantity(value string) int {
	value = cleanText(value)
	if value == "" {
		return 1
	}
	q, err := strconv.Atoi(value)
	if err != nil || q < 1 {
		return 1
	}
	return q
}

// dateLayouts covers the formats observed across export generations.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// cleanDate parses a date cell; unparseable dates are stored as nil and the
// order is simply excluded from time-series views.
func cleanDate(value string) *time.Time {
	value = cleanText(value)
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
