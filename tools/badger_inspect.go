package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"chat-gateway/domain"
)

// Dumps the stored user profiles (roles, last-active) out of a gateway
// Badger directory. Read-only; safe to point at a stopped gateway's data.
func main() {
	dbPath := flag.String("db", "./data/gateway", "Path to badger DB")
	prefix := flag.String("prefix", "profile:", "Prefix to scan")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Identity", "Name", "Roles", "Last Active"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)

	err = db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(*prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if err := item.Value(func(val []byte) error {
				var profile domain.UserProfile
				if err := json.Unmarshal(val, &profile); err != nil {
					table.Append([]string{key, "?", "?", "?", "?"})
					return nil
				}
				table.Append([]string{
					key,
					string(profile.ID),
					profile.Name,
					fmt.Sprintf("%v", profile.Roles),
					profile.LastActive.Format("2006-01-02 15:04:05"),
				})
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
}
