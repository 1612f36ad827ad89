package main

import (
	"context"
	"fmt"

	echoapi "github.com/trezcool/matokeo/apps/api/echo"
	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	filestore "github.com/trezcool/matokeo/storage/file"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()
	logger := logsvc.New("API", conf)

	validate, translator := core.NewValidator()
	student.InitValidators(validate, translator)

	repo := filestore.New(conf.Storage.DataFile)
	studentSvc, err := student.NewService(repo, validate, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading %s: %v", repo.Path(), err), err)
	}

	// =========================================================================
	// Start API Service

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			StudentSvc: studentSvc,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
