package sampling

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// costFetchTimeout bounds the one-shot fetch of a remote cost table.
const costFetchTimeout = 10 * time.Second

// sqlite3SelectCosts reads the per-aliquot prices from a cost database.
const sqlite3SelectCosts = `
	SELECT aliquots, price
	FROM costs
	ORDER BY aliquots ASC;`

// CostPoint is the unit price of collecting and analyzing a composite
// sample of a given aliquot count.
type CostPoint struct {
	Aliquots int     `db:"aliquots"`
	Price    float64 `db:"price"`
}

// CostTable maps aliquot counts to unit prices. Its aliquot range is
// independent of any sweep; the two are plotted side by side.
type CostTable []CostPoint

// LoadCostTable reads a cost table from an http(s) URL serving CSV, a
// local CSV file, or a local sqlite database with a costs table. The
// tabular contract is two named columns: aliquots and price.
func LoadCostTable(source string) (CostTable, error) {
	switch {
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return fetchCostCSV(source)
	case strings.HasSuffix(source, ".db") || strings.HasSuffix(source, ".sqlite"):
		return readCostDb(source)
	default:
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot open %v: %v", ErrResourceFetch, source, err)
		}
		defer f.Close()
		return parseCostCSV(f)
	}
}

// fetchCostCSV retrieves a remote CSV cost table with a bounded timeout.
func fetchCostCSV(url string) (CostTable, error) {
	client := http.Client{Timeout: costFetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot fetch %v: %v", ErrResourceFetch, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %v returned status %v", ErrResourceFetch, url, resp.Status)
	}
	return parseCostCSV(resp.Body)
}

// readCostDb loads the cost table from a sqlite database file.
func readCostDb(path string) (CostTable, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: cannot open %v: %v", ErrResourceFetch, path, err)
	}
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %v: %v", ErrResourceFetch, path, err)
	}
	defer db.Close()
	table := CostTable{}
	if err := db.Select(&table, sqlite3SelectCosts); err != nil {
		return nil, fmt.Errorf("%w: cannot query %v: %v", ErrResourceFetch, path, err)
	}
	return table, nil
}

// parseCostCSV decodes CSV rows into a cost table. Column order is free;
// the header must name both an aliquots and a price column.
func parseCostCSV(r io.Reader) (CostTable, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed CSV: %v", ErrResourceFetch, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: CSV resource is empty", ErrResourceFetch)
	}
	aliquotsCol, priceCol := -1, -1
	for i, name := range records[0] {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "aliquots":
			aliquotsCol = i
		case "price":
			priceCol = i
		}
	}
	if aliquotsCol < 0 || priceCol < 0 {
		return nil, fmt.Errorf("%w: CSV header must name aliquots and price columns; got %v", ErrResourceFetch, records[0])
	}
	table := CostTable{}
	for line, record := range records[1:] {
		aliquots, err := strconv.Atoi(strings.TrimSpace(record[aliquotsCol]))
		if err != nil {
			return nil, fmt.Errorf("%w: bad aliquot count on line %v: %v", ErrResourceFetch, line+2, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[priceCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad price on line %v: %v", ErrResourceFetch, line+2, err)
		}
		table = append(table, CostPoint{Aliquots: aliquots, Price: price})
	}
	return table, nil
}
