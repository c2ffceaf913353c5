package main

import (
	"fmt"
	"os"

	"github.com/mwantia/gauchogo/cmd/gauchogo/cli"
	"github.com/mwantia/gauchogo/cmd/gauchogo/cli/database"
	"github.com/mwantia/gauchogo/cmd/gauchogo/cli/server"
)

var (
	version = "0.0.1-dev"
	commit  = "main"
)

func main() {
	info := cli.VersionInfo{
		Version: version,
		Commit:  commit,
	}
	root := cli.NewRootCommand(info)

	root.AddCommand(cli.NewVersionCommand(info))

	root.AddCommand(server.NewServeCommand())
	root.AddCommand(server.NewConfigCommand())
	root.AddCommand(database.NewDatabaseCommand())

	if err := root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
