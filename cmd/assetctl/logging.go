package main

import (
	"github.com/unity-forge/backend/internal/log"
	"github.com/urfave/cli"
)

var logger = log.New("assetctl")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
