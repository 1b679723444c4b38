package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/notaneet/rasp03/config"
	"github.com/notaneet/rasp03/converter"
	"github.com/notaneet/rasp03/model"
	"github.com/notaneet/rasp03/pipeline"
	"github.com/notaneet/rasp03/utils"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Один прогон для группы: картинки и, по желанию, экспорт",
	Long: `Находит группу, разбирает расписание активной недели, рисует картинки на
сегодня и завтра в IMAGES_DIR. С --converter расписание дополнительно
выгружается в json, pjson, pgsql, sqlite, xlsx, ics или docx.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		group, _ := cmd.Flags().GetString("group")
		dateStr, _ := cmd.Flags().GetString("date")
		converterName, _ := cmd.Flags().GetString("converter")
		output, _ := cmd.Flags().GetString("output")
		subjects, _ := cmd.Flags().GetStringSlice("subject")

		cfg, err := config.LoadLocal(envFiles()...)
		if err != nil {
			return err
		}
		cfg.Parser.SubjectMatcher.MatchRaw = subjects
		if err := cfg.Parser.SubjectMatcher.Validate(); err != nil {
			return err
		}

		var export converter.IConverter
		if converterName != "" {
			if export, err = converter.Lookup(converterName); err != nil {
				return err
			}
		}

		log := newLogger()
		defer log.Close()

		p, err := newPipeline(cfg, log)
		if err != nil {
			return err
		}
		if p.Now, err = clockFor(dateStr, cfg.Location); err != nil {
			return err
		}

		var artifacts *pipeline.Artifacts
		_ = spinner.New().
			Title(fmt.Sprintf("Собираем расписание группы %s...", group)).
			Action(func() {
				artifacts, err = p.GenerateDailyImages(group)
			}).
			Run()

		if err != nil {
			return fmt.Errorf("не удалось сгенерировать расписание: %w", err)
		}

		if export != nil {
			node := artifacts.Export().FilterSubjects(cfg.Parser.SubjectMatcher.Match)
			if err := export.Write(node, output); err != nil {
				return fmt.Errorf("ошибка в сохранении расписания: %w", err)
			}
		}

		printSummary(artifacts, cfg.ImagesDir, converterName, output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("group", "g", "", "Группа, как она записана на портале (например Б735)")
	generateCmd.Flags().StringP("date", "d", "", "Считать сегодняшним днём [дд.мм.гггг]")
	generateCmd.Flags().StringP("converter", "c", "", "Тип выходных данных: "+strings.Join(converter.Names, ", "))
	generateCmd.Flags().StringP("output", "o", "data.out", "Файл, куда будет записываться результат (для pgsql - строка подключения)")
	generateCmd.Flags().StringSlice("subject", nil, "Требуемые предметы при экспорте (~ в начале - регулярное выражение)")
	generateCmd.MarkFlagRequired("group")
}

// clockFor часы, у которых "сегодня" - указанная дата; пустая строка - реальные часы
func clockFor(date string, loc *time.Location) (func() time.Time, error) {
	if date == "" {
		return time.Now, nil
	}

	day, err := utils.ParseDate(date, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q, expected дд.мм.гггг: %w", date, err)
	}
	return func() time.Time { return day }, nil
}

func printSummary(a *pipeline.Artifacts, imagesDir, converterName, output string) {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Padding(1, 0)
	dayStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s, группа %s, неделя %d", a.Institution, a.Group, a.Week)))

	days := []struct {
		title string
		day   model.DaySchedule
		image pipeline.Artifact
	}{
		{pipeline.TodayTitle, a.Today, a.TodayImage},
		{pipeline.TomorrowTitle, a.Tomorrow, a.TomorrowImage},
	}
	for _, d := range days {
		fmt.Println(dayStyle.Render(fmt.Sprintf("%s: %s, %s", d.title, d.day.Day, utils.FormatDate(d.day.Date))))
		if len(d.day.Slots) == 0 {
			fmt.Println("  Пар нет")
		}
		for _, slot := range d.day.Slots {
			fmt.Printf("  %s  %s\n", slot.Time, slot.Subject)
		}
		fmt.Println(mutedStyle.Render("  " + filepath.Join(imagesDir, d.image.Name)))
	}

	if converterName != "" {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("\nЭкспорт %s: %s", converterName, exportTarget(converterName, output))))
	}
}

// exportTarget куда ушёл экспорт; у pgsql логин и пароль не печатаются
func exportTarget(converterName, output string) string {
	if converterName != "pgsql" {
		return output
	}
	if i := strings.LastIndex(output, "@"); i >= 0 {
		return output[i+1:]
	}
	return output
}
