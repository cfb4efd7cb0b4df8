package main

import (
	"log"
	"net/http"

	"github.com/toxzak/teletextplus/internal/bot"
	"github.com/toxzak/teletextplus/internal/config"
	"github.com/toxzak/teletextplus/internal/db"
	"github.com/toxzak/teletextplus/internal/users"
	"github.com/toxzak/teletextplus/internal/web"
)

func main() {
	cfg := config.Load()

	var store users.Store = users.NewMemory()
	if cfg.DBPath != "" {
		conn, err := db.Init(cfg.DBPath)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		store = users.NewDB(conn)
	}

	client := bot.NewClient(cfg.BotToken)
	notifier := bot.NewNotifier(client, 4, 64)
	defer notifier.Stop()

	d := bot.NewDispatcher(client, store, notifier)
	r := web.Router(cfg, d, client)

	log.Printf("TeleTextPlus listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
