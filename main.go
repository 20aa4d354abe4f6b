package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
	"talent-park-backend/config"
	apiv1 "talent-park-backend/controllers/v1"
	"talent-park-backend/db"
	"talent-park-backend/fiberlog"
	"talent-park-backend/initializers"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	services := initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // limit of 20MB, resumes included
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		if err := db.Ping(services.DB); err != nil {
			return ctx.SendStatus(fiber.StatusServiceUnavailable)
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiv1.InitUserApiRouters(apiV1)
	apiv1.InitJobApiRouters(apiV1)
	apiv1.InitApplicationApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		cancel()
		services.NewsletterJob.Stop()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		db.Close(services.DB)
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
