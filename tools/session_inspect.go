package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/olekukonko/tablewriter"
)

// Dumps the session store of a cloudmeet client. Tokens are decoded
// without verification, purely for display: the client never holds the
// signing key.
func main() {
	dbPath := flag.String("db", ".cloudmeet/session", "Path to the session badger DB")
	prefix := flag.String("prefix", "session:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Token", "User ID", "Issuer", "Expires"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				token := string(v)
				userID, issuer, expires := describeToken(token)

				// Displaying the first 16 characters keeps the table readable
				displayToken := token
				if len(displayToken) > 16 {
					displayToken = displayToken[:16] + "..."
				}

				table.Append([]string{
					string(item.Key()),
					displayToken,
					userID,
					issuer,
					expires,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// describeToken extracts display fields from a JWT without verifying it.
// A token the parser cannot read is still shown, just without claims.
func describeToken(token string) (userID, issuer, expires string) {
	userID, issuer, expires = "-", "-", "-"

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}

	if v, found := claims["user_id"]; found {
		userID = fmt.Sprintf("%v", v)
	}
	if v, err := claims.GetIssuer(); err == nil && v != "" {
		issuer = v
	}
	if v, err := claims.GetExpirationTime(); err == nil && v != nil {
		expires = v.Format(time.RFC3339)
	}
	return
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
