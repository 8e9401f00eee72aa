package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	api "github.com/subnetcheck/subnetcheck/internal/app"

	_ "github.com/subnetcheck/subnetcheck/docs"
)

//	@title			Subnetcheck API
//	@version		1.0
//	@description	IP subnet membership testing: match addresses against CIDR subnets and stored subnet sets.

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:4040
//	@BasePath	/api/v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := api.Run(ctx, cfg); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
