// Seed loads demo profiles, wishlists and items from an XLSX sheet into
// a local database, so the preview pages and images can be exercised
// without the mobile backend. Never point this at production: the real
// schema is owned and written by the app backend.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/noto-space/noto-web/config"
	"github.com/noto-space/noto-web/internal/app/model"
	"github.com/noto-space/noto-web/internal/db"
	"github.com/noto-space/noto-web/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Expected columns, first row is the header:
// username | full_name | wishlist | privacy | item_title | price | image_url
const expectedColumns = 7

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readRows(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total rows to import: %d\n", len(rows))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	profiles, wishlists, items, err := buildRecords(rows)
	if err != nil {
		log.Fatal("Failed to build records:", err)
	}

	gormDB := db.GetDB()
	for i := range profiles {
		if err := gormDB.Create(&profiles[i]).Error; err != nil {
			log.Fatal("Failed to create profile:", err)
		}
	}
	for i := range wishlists {
		if err := gormDB.Create(&wishlists[i]).Error; err != nil {
			log.Fatal("Failed to create wishlist:", err)
		}
	}
	// Wishlist IDs are assigned on insert, resolve them for the items.
	tokenToID := make(map[string]uint, len(wishlists))
	for _, w := range wishlists {
		tokenToID[*w.ShareToken] = w.ID
	}
	for i := range items {
		items[i].item.WishlistID = tokenToID[items[i].wishlistToken]
		if err := gormDB.Create(&items[i].item).Error; err != nil {
			log.Fatal("Failed to create item:", err)
		}
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("  Profiles:  %d\n", len(profiles))
	fmt.Printf("  Wishlists: %d\n", len(wishlists))
	fmt.Printf("  Items:     %d\n", len(items))
}

func readRows(filePath string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data rows found in XLSX file")
	}

	fmt.Printf("Headers: %v\n", rows[0])
	return rows[1:], nil
}

type seededItem struct {
	item          model.WishlistItem
	wishlistToken string
}

func buildRecords(rows [][]string) ([]model.Profile, []model.Wishlist, []seededItem, error) {
	var (
		profiles  []model.Profile
		wishlists []model.Wishlist
		items     []seededItem
	)
	// username -> profile id, username|wishlist -> share token
	profileIDs := make(map[string]string)
	wishlistTokens := make(map[string]string)
	skipped := 0

	for i, row := range rows {
		if len(row) < expectedColumns {
			skipped++
			continue
		}

		username := strings.TrimSpace(row[0])
		fullName := strings.TrimSpace(row[1])
		wishlistName := strings.TrimSpace(row[2])
		privacy := parsePrivacy(strings.TrimSpace(row[3]))
		itemTitle := strings.TrimSpace(row[4])
		priceStr := strings.TrimSpace(row[5])
		imageURL := strings.TrimSpace(row[6])

		if username == "" || wishlistName == "" || itemTitle == "" {
			skipped++
			continue
		}

		profileID, ok := profileIDs[username]
		if !ok {
			profileID = uuid.NewString()
			profileIDs[username] = profileID
			profiles = append(profiles, model.Profile{
				ID:       profileID,
				Username: username,
				FullName: optional(fullName),
			})
		}

		wishlistKey := username + "|" + wishlistName
		token, ok := wishlistTokens[wishlistKey]
		if !ok {
			var err error
			token, err = util.GenerateShareToken(8)
			if err != nil {
				return nil, nil, nil, fmt.Errorf("row %d: generate share token: %w", i+2, err)
			}
			wishlistTokens[wishlistKey] = token
			wishlists = append(wishlists, model.Wishlist{
				OwnerID:    profileID,
				Name:       wishlistName,
				Privacy:    privacy,
				ShareToken: &token,
			})
		}

		item := model.WishlistItem{
			Title:    optional(itemTitle),
			ImageURL: optional(imageURL),
		}
		if priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil {
				skipped++
				continue
			}
			item.PriceAmount = &price
			item.Currency = optional("USD")
		}

		items = append(items, seededItem{item: item, wishlistToken: token})
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("  Valid rows:   %d\n", len(items))
	fmt.Printf("  Skipped rows: %d\n", skipped)

	return profiles, wishlists, items, nil
}

func parsePrivacy(s string) model.Privacy {
	switch model.Privacy(strings.ToLower(s)) {
	case model.PrivacyPublic:
		return model.PrivacyPublic
	case model.PrivacyUnlisted:
		return model.PrivacyUnlisted
	}
	return model.PrivacyPrivate
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
