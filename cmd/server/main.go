/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatterbox/internal/applog"
	"chatterbox/internal/config"
	"chatterbox/internal/entity"
	"chatterbox/internal/handler"
	"chatterbox/internal/hub"
	"chatterbox/internal/repository"
	"chatterbox/internal/service"

	"github.com/gorilla/sessions"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Could not load configuration: %v", err)
	}

	appLogger, err := applog.NewAppLogger(cfg.LogDirectory, cfg.EnableLogging)
	if err != nil {
		log.Fatalf("Could not set up logging: %v", err)
	}
	defer appLogger.CloseAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go appLogger.Run(ctx)

	hubLog, err := appLogger.RegisterSubsystem("hub")
	if err != nil {
		log.Fatalf("Could not register hub logger: %v", err)
	}
	serviceLog, err := appLogger.RegisterSubsystem("service")
	if err != nil {
		log.Fatalf("Could not register service logger: %v", err)
	}
	httpLog, err := appLogger.RegisterSubsystem("http")
	if err != nil {
		log.Fatalf("Could not register http logger: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(cfg.DBName), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not open database %q: %v", cfg.DBName, err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.UserSecret{},
		&entity.Contact{},
		&entity.ChatGroup{},
		&entity.GroupMember{},
		&entity.Message{},
		&entity.Notification{},
	); err != nil {
		log.Fatalf("Could not migrate schema: %v", err)
	}

	userRepo := repository.NewSQLiteUserRepository(db)
	contactRepo := repository.NewSQLiteContactRepository(db)
	groupRepo := repository.NewSQLiteGroupRepository(db)
	messageRepo := repository.NewSQLiteMessageRepository(db)
	notificationRepo := repository.NewSQLiteNotificationRepository(db)

	presence := hub.NewPresenceRegistry()
	groupRouter := hub.NewGroupRouter()

	notificationService := service.NewNotificationService(notificationRepo, presence, serviceLog)
	chatHub := hub.NewHub(presence, groupRouter, userRepo, contactRepo, groupRepo, messageRepo, notificationService, hubLog)

	authService := service.NewAuthService(userRepo, serviceLog)
	contactService := service.NewContactService(contactRepo, userRepo, serviceLog)
	groupService := service.NewGroupService(groupRepo, userRepo, messageRepo, serviceLog)
	messageService := service.NewMessageService(messageRepo, userRepo, serviceLog)

	store := sessions.NewCookieStore([]byte(cfg.SecretKey))

	router := handler.NewRouter(handler.Handlers{
		Auth:          handler.NewAuthHandler(authService, store),
		Contacts:      handler.NewContactHandler(contactService),
		Groups:        handler.NewGroupHandler(groupService),
		Messages:      handler.NewMessageHandler(messageService, httpLog),
		Notifications: handler.NewNotificationHandler(notificationService),
		Ws:            handler.NewWsHandler(chatHub, httpLog),
	}, store)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPServerPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			httpLog.Logf("Shutdown error: %v", err)
		}
	}()

	httpLog.Logf("Listening on port %d", cfg.HTTPServerPort)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
