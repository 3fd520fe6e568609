package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taskai-app/taskai-go/client"
	"github.com/taskai-app/taskai-go/internal/bootstrap"
	"github.com/taskai-app/taskai-go/internal/conf"
	"github.com/taskai-app/taskai-go/pkg/utils"
)

var (
	cfg     *conf.Config
	api     *client.Client
	apiFlag string
)

var RootCmd = &cobra.Command{
	Use:           "taskai",
	Short:         "Command line client for the TaskAI backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = conf.Load()
		if err != nil {
			return err
		}
		bootstrap.InitLog(cfg)
		if apiFlag != "" {
			cfg.APIURL = apiFlag
		}
		api = client.New(cfg.APIURL)
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&apiFlag, "api", "", "base endpoint, overrides TASKAI_API_URL")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		utils.Log.Error(err)
		os.Exit(1)
	}
}

func printJSON(v any) error {
	data, err := utils.Json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(data, '\n'))
	return err
}
