package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Wipes the local save directory so the game starts over. The app reseeds
// the memory catalog and achievement board on next boot.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	entries, err := os.ReadDir(dataDir)
	if os.IsNotExist(err) {
		log.Printf("Save directory %s does not exist, nothing to reset.\n", dataDir)
		return
	}
	if err != nil {
		log.Fatalf("Failed to read save directory: %v", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dataDir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Fatalf("Failed to remove %s: %v", path, err)
		}
		log.Printf("Removed %s\n", path)
		removed++
	}

	if removed == 0 {
		log.Printf("Save directory %s was already empty.\n", dataDir)
		return
	}

	log.Printf("✅ Save reset complete (%d files removed).\n", removed)
	log.Println("Next step: start the server to reseed the memory catalog")
}
