// Command token prints a bearer token signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"postshare/pkg/config"
	"postshare/pkg/sessions"
	"postshare/pkg/user"
)

func main() {
	id := flag.String("id", "1", "user id to put into the token")
	username := flag.String("username", "pike", "username to put into the token")
	admin := flag.Bool("admin", false, "mark the identity as admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln("token:", err)
	}
	if cfg.JWTSecret == "" {
		log.Fatalln("token: JWT_SECRET is not defined in environment variables")
	}

	sm := sessions.NewSessionManager(cfg.JWTSecret)
	token, err := sm.CreateToken(&user.User{Id: *id, Username: *username, IsAdmin: *admin}, *ttl)
	if err != nil {
		log.Fatalln("token:", err)
	}
	fmt.Println(token)
}
