package main

import (
	"context"
	"fmt"

	"github.com/xonecas/termchat/internal/constants"
	"github.com/xonecas/termchat/internal/transport"
)

// runCheck connects, lists contacts and logs out. It returns the exit code.
func runCheck(tr transport.Transport) int {
	fmt.Println("=== Transport Check ===")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), constants.BridgeRequestTimeout)
	defer cancel()

	self, err := tr.Connect(ctx)
	if err != nil {
		fmt.Printf("ERROR: Failed to connect: %v\n", err)
		return 1
	}
	fmt.Printf("OK: Connected as %q\n", self)

	contacts, err := tr.FetchContacts(ctx)
	if err != nil {
		fmt.Printf("ERROR: Failed to fetch contacts: %v\n", err)
		return 1
	}
	if len(contacts) == 0 {
		fmt.Println("WARNING: Contact list is empty, the client would keep retrying")
	} else {
		fmt.Printf("OK: %d contacts\n", len(contacts))
		for i, name := range contacts {
			if i == 5 {
				fmt.Printf("  ... and %d more\n", len(contacts)-i)
				break
			}
			fmt.Printf("  %s\n", name)
		}
	}

	if err := tr.Logout(ctx); err != nil {
		fmt.Printf("WARNING: Logout failed: %v\n", err)
	}

	fmt.Println("\n=== Check Complete ===")
	return 0
}
