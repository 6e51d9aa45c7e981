package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/parashar08/ig-json-parser/internal/cmd"
	"github.com/spf13/pflag"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("igjson: ")

	wd, err := os.Getwd()
	if err != nil {
		log.Fatal("failed to determine working directory")
	}

	args, err := cmd.ParseArgs(os.Args[1:], wd, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	if err != nil {
		log.Fatal(err.Error())
	}

	if args.Version {
		fmt.Println(cmd.Version)
		return
	}

	if err := cmd.Run(context.Background(), args.Settings); err != nil {
		log.Fatal(err.Error())
	}
}
