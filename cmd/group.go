package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/notaneet/rasp03/config"
	"github.com/notaneet/rasp03/model"
	"github.com/spf13/cobra"
)

var groupCmd = &cobra.Command{
	Use:   "group <группа>",
	Short: "Показать адрес страницы группы",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadLocal(envFiles()...)
		if err != nil {
			return err
		}

		p, err := newPipeline(cfg, newLogger())
		if err != nil {
			return err
		}

		var url string
		_ = spinner.New().
			Title(fmt.Sprintf("Ищем группу %s...", args[0])).
			Action(func() {
				url, err = p.FindGroup(args[0])
			}).
			Run()

		if errors.Is(err, model.ErrGroupNotFound) {
			warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
			fmt.Println(warnStyle.Render(fmt.Sprintf("Группа %s не найдена", args[0])))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(url))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
}
