package main

import (
	"fmt"
	"os"

	"github.com/trezcool/matokeo/core"
	"github.com/trezcool/matokeo/core/student"
	logsvc "github.com/trezcool/matokeo/services/logger"
	filestore "github.com/trezcool/matokeo/storage/file"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.New("CLI", conf)

	validate, translator := core.NewValidator()
	student.InitValidators(validate, translator)

	repo := filestore.New(conf.Storage.DataFile)
	svc, err := student.NewService(repo, validate, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("loading %s: %v", repo.Path(), err), err)
	}

	cli := newCommandLine(svc, translator, os.Stdout)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
