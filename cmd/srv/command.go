package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "BoostBuddies"
	app.Usage = "Social cross-promotion backend"
	app.Commands = []*cli.Command{
		{
			Action: server.startApi,
			Name:   "api",
			Usage:  "Start the api service",
		},
		{
			Action: server.startMigrate,
			Name:   "migrate",
			Usage:  "Migrate database tables",
		},
	}

	s.app = app
}
