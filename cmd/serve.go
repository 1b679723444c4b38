package cmd

import (
	"github.com/notaneet/rasp03/config"
	"github.com/notaneet/rasp03/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	Long:  `Поднимает /schedule/{group} и /schedule/{day}/{group}. Без SECRET_KEY не стартует.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFiles()...)
		if err != nil {
			return err
		}

		log := newLogger()
		defer log.Close()

		p, err := newPipeline(cfg, log)
		if err != nil {
			return err
		}

		return server.New(cfg.Secret, p, log).ListenAndServe(cfg.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
