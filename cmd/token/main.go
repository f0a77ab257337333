// Command token mints an access token for a user and device. It is meant for
// development setups where no identity provider issues tokens.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dmitrijs2005/syncserver/internal/server/auth"
	"github.com/google/uuid"
)

func main() {
	secret := flag.String("s", "secretKey", "signing secret, must match the server's")
	user := flag.String("u", "", "user id")
	device := flag.String("d", "", "device uuid, generated when empty")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *user == "" {
		log.Fatal("-u is required")
	}
	if *device == "" {
		*device = uuid.NewString()
	} else if _, err := uuid.Parse(*device); err != nil {
		log.Fatalf("-d: %v", err)
	}

	tok, err := auth.GenerateToken(auth.Identity{UserID: *user, DeviceID: *device}, []byte(*secret), *ttl)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(tok)
}
