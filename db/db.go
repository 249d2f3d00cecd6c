package db

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/maputil"
	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/joho/godotenv"

	"mine_probs_go/types"
)

// SolveData represents the payload stored for one solved board. Probs is
// row-major over the board; cells that are not unrevealed carry -1.
type SolveData struct {
	Board  string    `json:"board"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Mines  int       `json:"mines"`
	Probs  []float64 `json:"probs"`
}

// SolveRecord represents a record in the PocketBase database
type SolveRecord struct {
	ID      string    `json:"id"`
	Solve   SolveData `json:"solve"`
	Width   string    `json:"width"`
	Height  string    `json:"height"`
	Mines   string    `json:"mines"`
	Elapsed string    `json:"elapsed"`
	Created string    `json:"created"`
	Updated string    `json:"updated"`
}

var client *pocketbase.Client

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Warning: No .env file found")
	}

	email := os.Getenv("POCKETBASE_EMAIL")
	password := os.Getenv("POCKETBASE_PASSWORD")
	host := os.Getenv("POCKETBASE_HOST")

	client = pocketbase.NewClient(host,
		pocketbase.WithSuperuserEmailPassword(email, password))
}

// Authenticate tries to authenticate with PocketBase
func Authenticate() error {
	err := client.Authorize()
	if err != nil {
		return fmt.Errorf("authentication failed: %v", err)
	}

	// Start the re-authentication timer
	go func() {
		ticker := time.NewTicker(30 * time.Minute)
		for range ticker.C {
			if err := client.Authorize(); err != nil {
				fmt.Printf("⚠️ Re-authentication failed: %v\n", err)
			}
		}
	}()
	return nil
}

// UploadSolve stores a solved board with its probability map.
func UploadSolve(id string, board *types.Board, probs map[types.Cell]float64, elapsed time.Duration) (*pocketbase.ResponseCreate, error) {
	if len(id) > 6 {
		return nil, fmt.Errorf("invalid ID: must be a string of max 6 characters")
	}

	flat := make([]float64, len(board.Cells))
	for i := range flat {
		flat[i] = -1
	}
	for cell, p := range probs {
		flat[cell.Row*board.Width+cell.Col] = p
	}

	solveJSON, err := json.Marshal(SolveData{
		Board:  board.String(),
		Width:  board.Width,
		Height: board.Height,
		Mines:  board.Mines,
		Probs:  flat,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal solve data: %v", err)
	}

	data := map[string]any{
		"id":      id,
		"solve":   string(solveJSON),
		"width":   fmt.Sprintf("%d", board.Width),
		"height":  fmt.Sprintf("%d", board.Height),
		"mines":   fmt.Sprintf("%d", board.Mines),
		"elapsed": elapsed.String(),
	}

	exists, err := SolveExists(id)
	if err != nil {
		return nil, fmt.Errorf("failed to check if solve exists: %v", err)
	}
	if exists {
		return nil, fmt.Errorf("solve with ID %s already exists", id)
	}

	record, err := client.Create("solves", data)
	if err != nil {
		return nil, fmt.Errorf("failed to upload solve: %v", err)
	}
	return &record, nil
}

// GetSolve loads a stored solve by ID.
func GetSolve(id string) (*SolveRecord, error) {
	record, err := client.One("solves", id)
	if err != nil {
		return nil, fmt.Errorf("failed to load solve %s: %v", id, err)
	}

	var data SolveData
	if err := json.Unmarshal([]byte(record["solve"].(string)), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solve data: %v", err)
	}

	result := &SolveRecord{
		ID:    fmt.Sprintf("%v", record["id"]),
		Solve: data,
	}
	if s, ok := record["width"].(string); ok {
		result.Width = s
	}
	if s, ok := record["height"].(string); ok {
		result.Height = s
	}
	if s, ok := record["mines"].(string); ok {
		result.Mines = s
	}
	if s, ok := record["elapsed"].(string); ok {
		result.Elapsed = s
	}
	if s, ok := record["created"].(string); ok {
		result.Created = s
	}
	if s, ok := record["updated"].(string); ok {
		result.Updated = s
	}
	return result, nil
}

// ListSolves pages through stored solves. Filters may constrain the
// width, height and mines fields to exact values.
func ListSolves(page int, perPage int, filters map[string]string, sortField string, sortOrder string) (*pocketbase.ResponseList[map[string]any], error) {
	var filterRules []string

	keys := maputil.Keys(filters)
	sort.Strings(keys)
	for _, k := range keys {
		switch k {
		case "width", "height", "mines":
			filterRules = append(filterRules, fmt.Sprintf("%s = \"%s\"", k, filters[k]))
		}
	}

	sortExpr := sortField
	if sortOrder == "desc" {
		sortExpr = "-" + sortField
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    sortExpr,
		Filters: strings.Join(filterRules, " && "),
	}

	result, err := client.List("solves", params)
	return &result, err
}

// SolveExists reports whether a record with the given ID is stored.
func SolveExists(id string) (bool, error) {
	_, err := client.One("solves", id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
