package main

import (
	"log"
	"os"

	"outlookengine/cmd"
	"outlookengine/internal/logger"

	_ "github.com/lib/pq"
)

func main() {
	lg := logger.New()
	lg.Infof("starting api, commit %s", os.Getenv("commit_hash"))

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(apiHandler.Port)
	if err != nil {
		log.Fatal(err)
	}
}
