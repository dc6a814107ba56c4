package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/auctionworks/bidtable"
	"github.com/auctionworks/bidtable/config"
	"github.com/auctionworks/bidtable/loader"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	csvPath := flag.String("csv", "", "path to the bid CSV file, overrides config")
	bidKey := flag.String("key", "", "bid id used by the find command, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *csvPath != "" {
		cfg.CSVPath = *csvPath
	}
	if *bidKey != "" {
		cfg.BidKey = *bidKey
	}

	table, err := bidtable.NewHashTableWithSize(cfg.TableSize, nil)
	if err != nil {
		log.Fatalf("failed to create hash table: %v", err)
	}

	symbol := currencySymbol(cfg.CurrencySymbol)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		printMenu()
		if !scanner.Scan() {
			return
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			handleLoad(cfg.CSVPath, symbol, table)
		case "2":
			handleDisplay(table)
		case "3":
			handleFind(table, cfg.BidKey)
		case "4":
			handleRemove(table, scanner)
		case "9":
			fmt.Println("Good bye.")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func printMenu() {
	fmt.Println("Menu:")
	fmt.Println("  1. Load Bids")
	fmt.Println("  2. Display All Bids")
	fmt.Println("  3. Find Bid")
	fmt.Println("  4. Remove Bid")
	fmt.Println("  9. Exit")
	fmt.Print("Enter choice: ")
}

func handleLoad(csvPath string, symbol rune, table *bidtable.HashTable) {
	fmt.Printf("Loading CSV file %s\n\n", csvPath)

	start := time.Now()
	count, err := loader.LoadBids(csvPath, symbol, table)
	elapsed := time.Since(start)

	if err != nil {
		fmt.Printf("Load failed: %v\n", err)
		return
	}

	fmt.Printf("%d bids read\n", count)
	fmt.Printf("time: %s\n", elapsed)
}

func handleDisplay(table *bidtable.HashTable) {
	for i := int64(0); i < table.Size(); i++ {
		bucket, err := table.GetBucket(i)
		if err != nil || !bucket.HasBid {
			continue
		}

		fmt.Printf("Key %d: %s\n", bucket.BucketNo, formatBid(bucket.Bid))
		for _, chained := range bucket.Chained {
			fmt.Printf("    %s\n", formatBid(chained))
		}
	}
}

func handleFind(table *bidtable.HashTable, bidKey string) {
	start := time.Now()
	bid, err := table.Search(bidKey)
	elapsed := time.Since(start)

	if errors.Is(err, bidtable.NoBidFound{}) {
		fmt.Printf("Bid Id %s not found.\n", bidKey)
	} else {
		fmt.Println(formatBid(bid))
	}
	fmt.Printf("time: %s\n", elapsed)
}

func handleRemove(table *bidtable.HashTable, scanner *bufio.Scanner) {
	fmt.Print("Enter Bid Id to remove: ")
	if !scanner.Scan() {
		return
	}

	bidKey := strings.TrimSpace(scanner.Text())
	if bidKey == "" {
		fmt.Println("No Bid Id given.")
		return
	}

	table.Remove(bidKey)
	fmt.Printf("Bid Id %s removed.\n", bidKey)
}

func formatBid(bid bidtable.Bid) string {
	return fmt.Sprintf("%s | %s | %.2f | %s", bid.BidID, bid.Title, bid.Amount, bid.Fund)
}

// currencySymbol - Reduces the configured symbol string to a single rune, '$' when empty
func currencySymbol(s string) rune {
	for _, r := range s {
		return r
	}
	return '$'
}
