package main

import (
	appfx "github.com/WanderingWalnut/HomeRun/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
