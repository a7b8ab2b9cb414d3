package main

import (
	"os"

	kitlog "github.com/go-kit/kit/log"

	ulf "github.com/cmkomar/lsmulf-idealized-simulations"
)

func main() {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "cmd", "ulfgen")
	gen, err := ulf.NewGenerator(ulf.DefaultScenario(), logger)
	if err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
	if _, err := gen.Write(); err != nil {
		logger.Log("err", err)
		os.Exit(1)
	}
}
