package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"skill-hire-backend/config"
	apiv1 "skill-hire-backend/controllers/v1"
	"skill-hire-backend/db"
	_ "skill-hire-backend/docs"
	"skill-hire-backend/fiberlog"
	"skill-hire-backend/initializers"
	"skill-hire-backend/middleware"
)

const bodyLimit = 2 * 1024 * 1024

// @title Skill Hire API
// @version 1.0
// @description Recruiters publish challenges, interviewees attempt them and get reviewed.
// @BasePath /
func main() {
	services, conn := initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	api := app.Group(initializers.ApiPrefix)
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	api.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, PUT",
	}))
	api.Use(middleware.WithBodyLimit(bodyLimit))
	apiv1.InitApiRouters(api, services)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	db.Close(conn)
	log.Info("HTTP server successfully stopped")
}
