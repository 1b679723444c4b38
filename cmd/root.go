package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/notaneet/rasp03/config"
	"github.com/notaneet/rasp03/logger"
	"github.com/notaneet/rasp03/pipeline"
	"github.com/notaneet/rasp03/plugin"
	"github.com/notaneet/rasp03/render"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	pluginName string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:   "rasp03",
	Short: "Расписание ВСГУТУ картинками",
	Long: `rasp03 находит страницу группы на портале ВСГУТУ, разбирает расписание
и рисует две картинки: на сегодня и на завтра.`,
	SilenceUsage: true,
}

// Execute точка входа для main
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pluginName, "plugin", "ВСГУТУ", "Требуемое учебное учреждение")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "Файл с переменными окружения (по умолчанию .env)")
}

func envFiles() []string {
	if envFile == "" {
		return nil
	}
	return []string{envFile}
}

func newLogger() logger.Logger {
	return logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags))
}

// newPipeline собрать пайплайн поверх реальной файловой системы
func newPipeline(cfg *config.Config, log logger.Logger) (*pipeline.Pipeline, error) {
	source := plugin.NewPlugin(pluginName, cfg.Parser)
	if source == nil {
		return nil, fmt.Errorf("%s не найден", pluginName)
	}

	osFs := afero.NewOsFs()
	renderer := render.NewRenderer(render.LoadFontSource(osFs, cfg.FontPath), log)
	storage := pipeline.NewStorage(osFs, cfg.ImagesDir)
	return pipeline.New(source, renderer, storage, cfg.Location, log), nil
}
